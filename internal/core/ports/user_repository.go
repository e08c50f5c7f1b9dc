package ports

import (
	"context"

	"github.com/pragma/auth-service/internal/core/domain"
)

// UserRepository persists and retrieves users.
//
// Lookups return domain.ErrUserNotFound when nothing matches. Create translates
// unique-constraint violations into domain.ErrEmailAlreadyRegistered or
// domain.ErrDocumentAlreadyExists and assigns the user ID.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error)
	FindByEmails(ctx context.Context, emails []string) ([]*domain.User, error)
}
