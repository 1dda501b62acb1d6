package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/core/ports"
)

// Session snapshots the session state and injects it into the request
// context for handlers downstream. Wiring a nil service is a composition
// bug, not a runtime condition, so it fails immediately and loudly.
func Session(session ports.SessionService) echo.MiddlewareFunc {
	if session == nil {
		panic("middleware: Session wired without a session service")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := session.State()
			c.Set("session_scope", true)
			c.Set("role", string(state.Role()))
			c.Set("is_admin", state.IsAdmin)

			return next(c)
		}
	}
}
