package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pragma/auth-service/internal/api/metrics"
	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an email/password pair and returns a signed access
// token. Blank fields are left to the service, which answers them like any
// other bad credential.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "formato JSON inválido").SetInternal(err)
	}

	started := time.Now()
	token, err := h.authService.Login(c.Request().Context(), domain.Credential{
		Email:    req.Email,
		Password: req.Password,
	})
	observe(metrics.LoginsTotal, "login", started, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, token)
}
