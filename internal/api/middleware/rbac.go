package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pragma/auth-service/internal/core/domain"
)

// RBAC rejects callers whose role claim is not one of allowedRoles. It must run
// after Auth.
func RBAC(allowedRoles ...domain.RoleType) echo.MiddlewareFunc {
	allowed := make(map[domain.RoleType]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[domain.RoleType(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
