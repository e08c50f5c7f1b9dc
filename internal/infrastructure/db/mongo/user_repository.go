package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pragma/auth-service/internal/core/domain"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Surname        string    `bson:"surname"`
	Email          string    `bson:"email"`
	PasswordHash   string    `bson:"password_hash"`
	DocumentType   string    `bson:"document_type"`
	DocumentNumber string    `bson:"document_number"`
	BirthDate      time.Time `bson:"birth_date"`
	Address        string    `bson:"address"`
	PhoneNumber    string    `bson:"phone_number"`
	BaseSalary     int64     `bson:"base_salary"`
	Active         bool      `bson:"is_active"`
	CreatedAt      time.Time `bson:"created_at"`
	LastLoginAt    time.Time `bson:"last_login_at,omitempty"`
	RoleID         string    `bson:"role_id"`
}

// ExistsByEmail probes for an account with the given email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return n > 0, nil
}

// Create inserts user under a fresh UUID and returns the stored copy.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	doc.ID = uuid.NewString()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, translateInsertError(err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"document_number": documentNumber})
}

// FindByEmails returns the users whose email is in emails, ordered by email.
func (r *UserRepository) FindByEmails(ctx context.Context, emails []string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"email": bson.M{"$in": emails}},
		options.Find().SetSort(bson.D{{Key: "email", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find users by emails: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		DocumentType:   string(u.DocumentType),
		DocumentNumber: u.DocumentNumber,
		BirthDate:      u.BirthDate,
		Address:        u.Address,
		PhoneNumber:    u.PhoneNumber,
		BaseSalary:     u.BaseSalary,
		Active:         u.Active,
		CreatedAt:      u.CreatedAt,
		LastLoginAt:    u.LastLoginAt,
		RoleID:         u.RoleID,
	}
}

func (m *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:             m.ID,
		Name:           m.Name,
		Surname:        m.Surname,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		DocumentType:   domain.DocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		BirthDate:      m.BirthDate.UTC(),
		Address:        m.Address,
		PhoneNumber:    m.PhoneNumber,
		BaseSalary:     m.BaseSalary,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt.UTC(),
		LastLoginAt:    m.LastLoginAt.UTC(),
		RoleID:         m.RoleID,
	}
}
