package ports

import (
	"context"

	"github.com/pragma/auth-service/internal/core/domain"
)

// RoleRepository resolves roles. Both lookups return domain.ErrRoleNotFound
// when the role does not exist.
type RoleRepository interface {
	FindByType(ctx context.Context, roleType domain.RoleType) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
}
