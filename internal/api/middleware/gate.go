package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consulta-ja/booking-system/internal/core/domain"
)

// Gate restricts a route to the given roles, reading the role injected by
// the Session middleware.
func Gate(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrAccessDenied.Error()})
			}
			return next(c)
		}
	}
}
