package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// ctxRole extracts the role injected by the Session middleware. A handler
// running outside that scope is a composition bug; it fails fast with a 500
// instead of silently defaulting to signed-out.
func ctxRole(c echo.Context) (domain.Role, error) {
	if scoped, _ := c.Get("session_scope").(bool); !scoped {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "handler mounted outside session scope")
	}
	role, _ := c.Get("role").(string)
	return domain.Role(role), nil
}
