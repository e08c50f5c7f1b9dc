package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/pragma/auth-service/internal/core/domain"
)

const usersNS = "test.users"

func dupKey(index string) mongo.WriteException {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: test.users index: " + index + " dup key: { x: 1 }",
	}}}
}

func TestTranslateInsertError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"email index", dupKey(emailIndex), domain.ErrEmailAlreadyRegistered},
		{"document index", dupKey(documentIndex), domain.ErrDocumentAlreadyExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := translateInsertError(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("key value naming another index", func(t *testing.T) {
		msg := "E11000 duplicate key error collection: test.users index: " + emailIndex +
			` dup key: { email: "` + documentIndex + `@x.io" }`
		err := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}}}
		if got := translateInsertError(err); !errors.Is(got, domain.ErrEmailAlreadyRegistered) {
			t.Fatalf("got %v, want %v", got, domain.ErrEmailAlreadyRegistered)
		}
	})

	t.Run("command error", func(t *testing.T) {
		err := mongo.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: " + documentIndex + " dup key: { document_number: \"1\" }",
		}
		if got := translateInsertError(err); !errors.Is(got, domain.ErrDocumentAlreadyExists) {
			t.Fatalf("got %v, want %v", got, domain.ErrDocumentAlreadyExists)
		}
	})

	t.Run("unknown index stays technical", func(t *testing.T) {
		got := translateInsertError(dupKey("_id_"))
		if domain.IsBusiness(got) {
			t.Fatalf("duplicate on unknown index must not become a business error: %v", got)
		}
	})

	t.Run("non duplicate is wrapped", func(t *testing.T) {
		boom := errors.New("socket closed")
		got := translateInsertError(boom)
		if !errors.Is(got, boom) || domain.IsBusiness(got) {
			t.Fatalf("got %v", got)
		}
	})
}

func userDoc(email string) bson.D {
	return bson.D{
		{Key: "_id", Value: "u-1"},
		{Key: "name", Value: "Pepe"},
		{Key: "surname", Value: "Perez"},
		{Key: "email", Value: email},
		{Key: "password_hash", Value: "$2a$10$hash"},
		{Key: "document_type", Value: "CC"},
		{Key: "document_number", Value: "1234567890"},
		{Key: "birth_date", Value: primitive.NewDateTimeFromTime(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))},
		{Key: "base_salary", Value: int64(2500000)},
		{Key: "is_active", Value: true},
		{Key: "role_id", Value: "role-applicant"},
	}
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(ctx, &domain.User{Email: "pepe@gmail.com", DocumentNumber: "1"})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if got.ID == "" || got.Email != "pepe@gmail.com" {
			mt.Fatalf("unexpected user: %+v", got)
		}
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: users_email_key dup key",
		}))

		_, err := repo.Create(ctx, &domain.User{Email: "pepe@gmail.com"})
		if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			mt.Fatalf("got %v, want ErrEmailAlreadyRegistered", err)
		}
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, userDoc("pepe@gmail.com")))

		got, err := repo.FindByEmail(ctx, "pepe@gmail.com")
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if got.ID != "u-1" || got.DocumentType != domain.DocumentCC || got.RoleID != "role-applicant" || !got.Active {
			mt.Fatalf("unexpected user: %+v", got)
		}
		if got.BirthDate.Year() != 1990 {
			mt.Fatalf("birth date not decoded: %v", got.BirthDate)
		}
	})

	mt.Run("find by document missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		_, err := repo.FindByDocumentNumber(ctx, "404")
		if !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("got %v, want ErrUserNotFound", err)
		}
	})

	mt.Run("exists by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := repo.ExistsByEmail(ctx, "pepe@gmail.com")
		if err != nil || !ok {
			mt.Fatalf("got %v, %v", ok, err)
		}
	})

	mt.Run("find by emails", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			userDoc("ana@gmail.com"), userDoc("pepe@gmail.com")))

		got, err := repo.FindByEmails(ctx, []string{"pepe@gmail.com", "ana@gmail.com"})
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if len(got) != 2 || got[0].Email != "ana@gmail.com" {
			mt.Fatalf("unexpected users: %+v", got)
		}
	})
}

func TestRoleRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by type", func(mt *mtest.T) {
		repo := NewRoleRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.roles", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "role-applicant"},
			{Key: "role_type", Value: "APPLICANT"},
			{Key: "description", Value: "Solicitante"},
		}))

		got, err := repo.FindByType(ctx, domain.RoleApplicant)
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if got.ID != "role-applicant" || got.Type != domain.RoleApplicant {
			mt.Fatalf("unexpected role: %+v", got)
		}
	})

	mt.Run("missing role", func(mt *mtest.T) {
		repo := NewRoleRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.roles", mtest.FirstBatch))

		_, err := repo.FindByID(ctx, "nope")
		if !errors.Is(err, domain.ErrRoleNotFound) {
			mt.Fatalf("got %v, want ErrRoleNotFound", err)
		}
	})

	mt.Run("empty id short circuits", func(mt *mtest.T) {
		repo := NewRoleRepository(mt.DB)
		if _, err := repo.FindByID(ctx, ""); !errors.Is(err, domain.ErrRoleNotFound) {
			mt.Fatalf("got %v", err)
		}
	})

	mt.Run("seed upserts", func(mt *mtest.T) {
		repo := NewRoleRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
		)
		if err := repo.SeedRoles(ctx, domain.DefaultRoles()); err != nil {
			mt.Fatalf("seed: %v", err)
		}
	})
}
