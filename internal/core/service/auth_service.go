package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

// AuthService implements login.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenProvider
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Login verifies the credential and issues an access token.
//
// An unknown email and a wrong password both yield domain.ErrInvalidCredentials
// so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, credential domain.Credential) (token *domain.AccessToken, err error) {
	ctx, span := startSpan(ctx, "AuthService.Login")
	defer func() { endSpan(span, err) }()

	email := normalizeEmail(credential.Email)
	if email == "" || credential.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// 1. Find the account.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	// 2. Verify the secret.
	if !s.hasher.Matches(credential.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Resolve the role. A dangling role id is a data fault, not a caller error.
	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("login: find role: %w", err)
	}

	// 4. Issue the token.
	signed, err := s.tokens.Issue(user, role.Type)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	span.SetAttributes(attrUserID(user.ID), attrRole(string(role.Type)))
	s.log.Info().
		Str("email", user.Email).
		Str("document_number", user.DocumentNumber).
		Str("role", string(role.Type)).
		Msg("user authenticated")

	return &domain.AccessToken{Token: signed}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
