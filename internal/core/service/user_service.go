package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

// defaultRole is assigned to every self-registered account.
const defaultRole = domain.RoleApplicant

type userService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tx     ports.Transactor
	log    zerolog.Logger
	now    func() time.Time
}

// NewUserService returns a UserService implementation.
func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	tx ports.Transactor,
	log zerolog.Logger,
) ports.UserService {
	return &userService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		tx:     tx,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RegisterUser creates an active account with the applicant role.
//
// The email probe and the insert run in one transaction, but the probe alone
// cannot stop two concurrent registrations of the same email. The unique index
// in the store is the backstop; repositories report its violation as
// domain.ErrEmailAlreadyRegistered or domain.ErrDocumentAlreadyExists.
func (s *userService) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (created *domain.User, err error) {
	ctx, span := startSpan(ctx, "UserService.RegisterUser")
	defer func() { endSpan(span, err) }()

	in.Email = normalizeEmail(in.Email)
	in.DocumentNumber = strings.TrimSpace(in.DocumentNumber)
	if in.Email == "" || in.Password == "" || in.DocumentNumber == "" {
		return nil, fmt.Errorf("%w: email, password and document number are required", domain.ErrInvalidInput)
	}

	created, err = atomically(ctx, s.tx, func(ctx context.Context) (*domain.User, error) {
		// 1. Uniqueness pre-check.
		exists, err := s.users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, fmt.Errorf("register user: check email: %w", err)
		}
		if exists {
			return nil, domain.ErrEmailAlreadyRegistered
		}

		// 2. Derive the account.
		user, err := s.newUser(in)
		if err != nil {
			return nil, err
		}

		// 3. Resolve the default role.
		role, err := s.roles.FindByType(ctx, defaultRole)
		if err != nil {
			if domain.IsBusiness(err) {
				return nil, err
			}
			return nil, fmt.Errorf("register user: find role: %w", err)
		}

		// 4. Attach the role and persist.
		user.AssignRole(role.ID)
		stored, err := s.users.Create(ctx, user)
		if err != nil {
			if domain.IsBusiness(err) {
				return nil, err
			}
			return nil, fmt.Errorf("register user: insert: %w", err)
		}
		return stored, nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attrUserID(created.ID))
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *userService) newUser(in ports.RegisterUserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register user: hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		Name:           strings.TrimSpace(in.Name),
		Surname:        strings.TrimSpace(in.Surname),
		Email:          in.Email,
		PasswordHash:   hash,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		BirthDate:      in.BirthDate,
		Address:        in.Address,
		PhoneNumber:    in.PhoneNumber,
		BaseSalary:     in.BaseSalary,
	}
	user.Activate()
	user.MarkCreated(now)
	user.MarkLastLogin(now)
	return user, nil
}

// GetUserByDocumentNumber returns domain.ErrUserNotFound when no account has
// the given document number.
func (s *userService) GetUserByDocumentNumber(ctx context.Context, documentNumber string) (user *domain.User, err error) {
	ctx, span := startSpan(ctx, "UserService.GetUserByDocumentNumber")
	defer func() { endSpan(span, err) }()

	user, err = s.users.FindByDocumentNumber(ctx, strings.TrimSpace(documentNumber))
	if err != nil {
		return nil, lookupError("get user by document", err)
	}
	s.log.Debug().Str("user_id", user.ID).Msg("user found by document")
	return user, nil
}

// GetUserByEmail returns domain.ErrUserNotFound when no account has the email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (user *domain.User, err error) {
	ctx, span := startSpan(ctx, "UserService.GetUserByEmail")
	defer func() { endSpan(span, err) }()

	user, err = s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, lookupError("get user by email", err)
	}
	s.log.Debug().Str("email", user.Email).Msg("user found by email")
	return user, nil
}

// GetUsersByEmails returns the accounts matching any of emails. Unknown emails
// are skipped.
func (s *userService) GetUsersByEmails(ctx context.Context, emails []string) (users []*domain.User, err error) {
	ctx, span := startSpan(ctx, "UserService.GetUsersByEmails")
	defer func() { endSpan(span, err) }()

	normalized := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = normalizeEmail(e)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		normalized = append(normalized, e)
	}
	if len(normalized) == 0 {
		return []*domain.User{}, nil
	}

	users, err = s.users.FindByEmails(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("get users by emails: %w", err)
	}
	return users, nil
}

func lookupError(op string, err error) error {
	if domain.IsBusiness(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
