package ports

import (
	"context"
	"time"

	"github.com/pragma/auth-service/internal/core/domain"
)

// RegisterUserInput is the DTO passed from the transport layer to UserService.
// ID, role and timestamps are assigned during registration.
type RegisterUserInput struct {
	Name           string
	Surname        string
	Email          string
	Password       string
	DocumentType   domain.DocumentType
	DocumentNumber string
	BirthDate      time.Time
	Address        string
	PhoneNumber    string
	BaseSalary     int64
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUsersByEmails(ctx context.Context, emails []string) ([]*domain.User, error)
}
