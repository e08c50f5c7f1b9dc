package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

// Keys under which Auth stores the caller's claims in the echo.Context.
// ContextClaims holds the full domain.TokenClaims.
const (
	ContextClaims = "claims"
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Auth validates the bearer token and injects its claims into the context.
func Auth(tokens ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token = strings.TrimSpace(token)

			if !tokens.IsValid(token) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims := decodeClaims(tokens, token)
			c.Set(ContextClaims, claims)
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, string(claims.Role))

			return next(c)
		}
	}
}

func decodeClaims(tokens ports.TokenValidator, token string) domain.TokenClaims {
	str := func(name string) string {
		v, _ := tokens.Claim(token, name)
		return v
	}
	unix := func(name string) time.Time {
		sec, err := strconv.ParseInt(str(name), 10, 64)
		if err != nil {
			return time.Time{}
		}
		return time.Unix(sec, 0).UTC()
	}
	return domain.TokenClaims{
		UserID:         str(domain.ClaimUserID),
		Email:          str(domain.ClaimEmail),
		DocumentNumber: str(domain.ClaimDocumentNumber),
		Name:           str(domain.ClaimName),
		Role:           domain.RoleType(str(domain.ClaimRole)),
		IssuedAt:       unix(domain.ClaimIssuedAt),
		ExpiresAt:      unix(domain.ClaimExpiresAt),
	}
}
