package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pragma/auth-service/internal/core/domain"
)

const internalErrorMessage = "Error interno del servidor"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

var statusByCode = map[string]int{
	domain.CodeInvalidCredentials:     http.StatusUnauthorized,
	domain.CodeEmailAlreadyRegistered: http.StatusConflict,
	domain.CodeDocumentAlreadyExists:  http.StatusConflict,
	domain.CodeUserNotFound:           http.StatusNotFound,
	domain.CodeRoleNotFound:           http.StatusNotFound,
	domain.CodeBadRequest:             http.StatusBadRequest,
}

// Catalogue codes for transport-level failures raised by Echo or middleware.
var codeByStatus = map[int]string{
	http.StatusBadRequest:       "GEN_001",
	http.StatusUnauthorized:     "GEN_401",
	http.StatusForbidden:        "GEN_403",
	http.StatusNotFound:         "GEN_404",
	http.StatusMethodNotAllowed: "GEN_405",
	http.StatusConflict:         "GEN_409",
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps business errors to their catalogue code and HTTP status.
//   - Logs unexpected errors at Error level without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "code", "detail"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code, ok := codeByStatus[he.Code]
		if !ok {
			code = domain.CodeInternal
		}
		body := errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: code}
		if he.Internal != nil {
			body.Detail = he.Internal.Error()
		}
		return he.Code, body
	}

	if domain.IsBusiness(err) {
		code := domain.Code(err)
		log.Debug().
			Err(err).
			Str("code", code).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request rejected")
		return statusByCode[code], errorResponse{
			Error:  businessMessage(err),
			Code:   code,
			Detail: err.Error(),
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: internalErrorMessage, Code: domain.CodeInternal}
}

// businessMessage returns the sentinel's own message, dropping any wrapping
// context so the error field stays stable for clients.
func businessMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrInvalidCredentials,
		domain.ErrEmailAlreadyRegistered,
		domain.ErrDocumentAlreadyExists,
		domain.ErrUserNotFound,
		domain.ErrRoleNotFound,
		domain.ErrInvalidInput,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
