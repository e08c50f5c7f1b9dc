package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/infrastructure/security"
)

// Register an applicant with the real hasher and log in with the real token
// provider.
func TestRegisterThenLogin_RealSecurityAdapters(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(applicantRole(), adminRole())
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens, err := security.NewJWTProvider(security.JWTConfig{
		Secret: "0123456789abcdef0123456789abcdef",
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("jwt provider: %v", err)
	}

	registrar := NewUserService(users, roles, hasher, &stubTransactor{}, zerolog.Nop())
	auth := NewAuthService(users, roles, hasher, tokens, zerolog.Nop())

	registered, err := registrar.RegisterUser(context.Background(), pepeInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !registered.Active || registered.CreatedAt.IsZero() || registered.RoleID != applicantRoleID {
		t.Fatalf("unexpected registered user: %+v", registered)
	}

	token, err := auth.Login(context.Background(), domain.Credential{Email: "pepe@gmail.com", Password: "test1234"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !tokens.IsValid(token.Token) {
		t.Fatalf("issued token is not valid")
	}
	if email, _ := tokens.Claim(token.Token, domain.ClaimEmail); email != "pepe@gmail.com" {
		t.Fatalf("expected email claim pepe@gmail.com, got %q", email)
	}
	if role, _ := tokens.Claim(token.Token, domain.ClaimRole); role != "APPLICANT" {
		t.Fatalf("expected role claim APPLICANT, got %q", role)
	}
	if id, _ := tokens.Claim(token.Token, domain.ClaimUserID); id != registered.ID {
		t.Fatalf("expected userId claim %s, got %q", registered.ID, id)
	}

	if _, err := auth.Login(context.Background(), domain.Credential{Email: "pepe@gmail.com", Password: "wrong"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_OverlongPasswordIsInvalidInput(t *testing.T) {
	users := newStubUserRepo()
	tx := &stubTransactor{}
	registrar := NewUserService(users, newStubRoleRepo(applicantRole()), security.NewBcryptHasher(bcrypt.MinCost), tx, zerolog.Nop())

	in := pepeInput()
	in.Password = strings.Repeat("a", 73)
	_, err := registrar.RegisterUser(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !domain.IsBusiness(err) || domain.Code(err) != domain.CodeBadRequest {
		t.Fatalf("expected business error with %s, got %q", domain.CodeBadRequest, domain.Code(err))
	}
	if users.inserts != 0 {
		t.Fatalf("expected zero writes, got %d", users.inserts)
	}
}
