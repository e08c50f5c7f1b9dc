package ports

import (
	"context"

	"github.com/pragma/auth-service/internal/core/domain"
)

// AuthService turns credentials into access tokens.
type AuthService interface {
	Login(ctx context.Context, credential domain.Credential) (*domain.AccessToken, error)
}
