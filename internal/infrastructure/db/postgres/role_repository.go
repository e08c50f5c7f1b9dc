package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragma/auth-service/internal/core/domain"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) FindByType(ctx context.Context, roleType domain.RoleType) (*domain.Role, error) {
	return r.findOne(ctx, `SELECT id::text, role_type, description FROM roles WHERE role_type = $1`, string(roleType))
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	if id == "" {
		return nil, domain.ErrRoleNotFound
	}
	// Casting in SQL would fail on malformed ids; compare as text instead.
	return r.findOne(ctx, `SELECT id::text, role_type, description FROM roles WHERE id::text = $1`, id)
}

func (r *RoleRepository) findOne(ctx context.Context, q string, arg any) (*domain.Role, error) {
	var (
		role     domain.Role
		roleType string
	)
	err := conn(ctx, r.pool).QueryRow(ctx, q, arg).Scan(&role.ID, &roleType, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	role.Type = domain.RoleType(roleType)
	return &role, nil
}

// SeedRoles inserts any of roles missing from the table. The initial
// migration already seeds the defaults, so this is normally a no-op.
func (r *RoleRepository) SeedRoles(ctx context.Context, roles []domain.Role) error {
	for _, role := range roles {
		id := role.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := conn(ctx, r.pool).Exec(ctx,
			`INSERT INTO roles (id, role_type, description) VALUES ($1::uuid, $2, $3)
			ON CONFLICT (role_type) DO NOTHING`,
			id, string(role.Type), role.Description)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Type, err)
		}
	}
	return nil
}
