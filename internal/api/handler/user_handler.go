package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pragma/auth-service/internal/api/metrics"
	"github.com/pragma/auth-service/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Register creates an applicant account.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "formato JSON inválido").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := toRegisterInput(req)
	if err != nil {
		return err
	}

	started := time.Now()
	user, err := h.userService.RegisterUser(c.Request().Context(), input)
	observe(metrics.RegistrationsTotal, "register", started, err)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path+"/"+user.DocumentNumber)
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// GetByDocument returns the user owning the document number in the path.
func (h *UserHandler) GetByDocument(c echo.Context) error {
	user, err := h.userService.GetUserByDocumentNumber(c.Request().Context(), c.Param("documentNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserInfoResponse(user))
}

// GetByEmail returns the user registered under the email in the path.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userService.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserInfoResponse(user))
}

// GetByEmails resolves up to 1000 emails at once. Unknown emails are omitted.
func (h *UserHandler) GetByEmails(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req emailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "formato JSON inválido").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	users, err := h.userService.GetUsersByEmails(c.Request().Context(), req.Emails)
	if err != nil {
		return err
	}

	h.log.Debug().
		Str("caller_id", caller.UserID).
		Str("caller_role", string(caller.Role)).
		Int("requested", len(req.Emails)).
		Int("found", len(users)).
		Msg("batch user lookup")

	return c.JSON(http.StatusOK, toBasicInfo(users))
}
