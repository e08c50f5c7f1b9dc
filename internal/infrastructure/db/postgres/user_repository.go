package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragma/auth-service/internal/core/domain"
)

const userColumns = `id::text, name, surname, email, password_hash, document_type,
	document_number, birth_date, address, phone_number, base_salary, is_active,
	created_at, last_login_at, role_id::text`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `INSERT INTO users (id, name, surname, email, password_hash, document_type,
		document_number, birth_date, address, phone_number, base_salary, is_active,
		created_at, last_login_at, role_id)
	VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15::uuid)
	RETURNING ` + userColumns

	var lastLogin *time.Time
	if !user.LastLoginAt.IsZero() {
		t := user.LastLoginAt
		lastLogin = &t
	}

	row := conn(ctx, r.pool).QueryRow(ctx, q,
		uuid.NewString(), user.Name, user.Surname, user.Email, user.PasswordHash,
		string(user.DocumentType), user.DocumentNumber, user.BirthDate, user.Address,
		user.PhoneNumber, user.BaseSalary, user.Active, user.CreatedAt, lastLogin, user.RoleID,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, translateInsertError(err)
	}
	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE document_number = $1`, documentNumber)
}

func (r *UserRepository) FindByEmails(ctx context.Context, emails []string) ([]*domain.User, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ANY($1) ORDER BY email`, emails)
	if err != nil {
		return nil, fmt.Errorf("find users by emails: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, q string, arg any) (*domain.User, error) {
	user, err := scanUser(conn(ctx, r.pool).QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u         domain.User
		docType   string
		lastLogin *time.Time
	)
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &docType,
		&u.DocumentNumber, &u.BirthDate, &u.Address, &u.PhoneNumber, &u.BaseSalary,
		&u.Active, &u.CreatedAt, &lastLogin, &u.RoleID)
	if err != nil {
		return nil, err
	}
	u.DocumentType = domain.DocumentType(docType)
	if lastLogin != nil {
		u.LastLoginAt = lastLogin.UTC()
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
