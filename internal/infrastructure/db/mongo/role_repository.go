package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pragma/auth-service/internal/core/domain"
)

type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	ID          string `bson:"_id"`
	RoleType    string `bson:"role_type"`
	Description string `bson:"description"`
}

func (r *RoleRepository) FindByType(ctx context.Context, roleType domain.RoleType) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"role_type": string(roleType)})
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	if id == "" {
		return nil, domain.ErrRoleNotFound
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

// SeedRoles inserts any of roles missing from the collection. Existing roles,
// including their ids, are left untouched.
func (r *RoleRepository) SeedRoles(ctx context.Context, roles []domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for _, role := range roles {
		id := role.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"role_type": string(role.Type)},
			bson.M{"$setOnInsert": bson.M{
				"_id":         id,
				"role_type":   string(role.Type),
				"description": role.Description,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Type, err)
		}
	}
	return nil
}

func (r *RoleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoRole
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{
		ID:          doc.ID,
		Type:        domain.RoleType(doc.RoleType),
		Description: doc.Description,
	}, nil
}
