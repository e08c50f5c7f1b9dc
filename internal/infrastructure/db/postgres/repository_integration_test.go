package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/pragma/auth-service/internal/core/domain"
)

// Runs against a disposable database named by TEST_DATABASE_URL.
func TestRepositoriesIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	if err := Migrate(dsn, DirectionUp); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := Connect(ctx, Config{URL: dsn})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	t.Cleanup(func() { _, _ = pool.Exec(context.Background(), `DELETE FROM users`) })

	users := NewUserRepository(pool)
	roles := NewRoleRepository(pool)
	tx := NewTransactor(pool)

	role, err := roles.FindByType(ctx, domain.RoleApplicant)
	if err != nil {
		t.Fatalf("seeded applicant role: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	user := &domain.User{
		Name: "Pepe", Surname: "Perez", Email: "pepe@gmail.com", PasswordHash: "hash",
		DocumentType: domain.DocumentCC, DocumentNumber: "1234567890",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), Active: true,
		CreatedAt: now, LastLoginAt: now, RoleID: role.ID,
	}

	var created *domain.User
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = users.Create(ctx, user)
		return err
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := users.Create(ctx, user); !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Fatalf("duplicate email: got %v", err)
	}

	rolledBack := errors.New("abort")
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		other := *user
		other.Email, other.DocumentNumber = "ana@gmail.com", "999"
		if _, err := users.Create(ctx, &other); err != nil {
			return err
		}
		return rolledBack
	})
	if !errors.Is(err, rolledBack) {
		t.Fatalf("got %v, want abort", err)
	}
	if ok, _ := users.ExistsByEmail(ctx, "ana@gmail.com"); ok {
		t.Fatal("rolled back insert is visible")
	}

	found, err := users.FindByDocumentNumber(ctx, "1234567890")
	if err != nil || found.ID != created.ID {
		t.Fatalf("find by document: %+v, %v", found, err)
	}
	batch, err := users.FindByEmails(ctx, []string{"pepe@gmail.com", "missing@gmail.com"})
	if err != nil || len(batch) != 1 {
		t.Fatalf("find by emails: %d, %v", len(batch), err)
	}
	if _, err := roles.FindByID(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("malformed role id: %v", err)
	}
}
