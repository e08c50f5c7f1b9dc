package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pragma/auth-service/internal/core/domain"
)

const (
	uniqueViolation = "23505"

	emailConstraint    = "users_email_key"
	documentConstraint = "users_document_number_key"
)

// translateInsertError maps unique constraint violations on users to business
// errors and wraps anything else.
func translateInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return fmt.Errorf("insert user: %w", err)
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return domain.ErrEmailAlreadyRegistered
	case documentConstraint:
		return domain.ErrDocumentAlreadyExists
	default:
		return fmt.Errorf("insert user: unexpected unique violation: %w", err)
	}
}
