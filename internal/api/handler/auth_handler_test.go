package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pragma/auth-service/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error)
}

func (s *stubAuthService) Login(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error) {
	return s.loginFn(ctx, cred)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error) {
			if cred.Email != "pepe@gmail.com" || cred.Password != "test1234" {
				t.Fatalf("unexpected credential: %+v", cred)
			}
			return &domain.AccessToken{Token: "signed.jwt.token"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/v1/login", `{"email":"pepe@gmail.com","password":"test1234"}`)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "signed.jwt.token" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/v1/login", `{"email":"pepe@gmail.com","password":"nope"}`)

	err := NewAuthHandler(stub).Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must leave rendering to the error handler")
	}
}

func TestAuthHandler_Login_BlankFieldsReachService(t *testing.T) {
	called := false
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error) {
			called = true
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/login", `{}`)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
}

func TestAuthHandler_Login_MalformedJSON(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, cred domain.Credential) (*domain.AccessToken, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/login", `{"email":`)

	err := NewAuthHandler(stub).Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
