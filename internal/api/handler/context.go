package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pragma/auth-service/internal/api/middleware"
	"github.com/pragma/auth-service/internal/core/domain"
)

// ctxPrincipal extracts the caller's claims. Missing claims mean the route was
// mounted without the Auth middleware.
func ctxPrincipal(c echo.Context) (domain.TokenClaims, error) {
	claims, ok := c.Get(middleware.ContextClaims).(domain.TokenClaims)
	if !ok || claims.UserID == "" {
		return domain.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
