package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "users"
	rolesCollection = "roles"

	// Index names double as the constraint names reported on duplicate keys.
	emailIndex    = "users_email_key"
	documentIndex = "users_document_number_key"
	roleTypeIndex = "roles_role_type_key"
)

// EnsureIndexes creates the unique indexes the registration flow relies on.
// The application-level email probe is not atomic with the insert; these
// indexes are what actually keeps emails and document numbers unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(emailIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "document_number", Value: 1}},
			Options: options.Index().SetName(documentIndex).SetUnique(true),
		},
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	roleIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "role_type", Value: 1}},
		Options: options.Index().SetName(roleTypeIndex).SetUnique(true),
	}
	if _, err := db.Collection(rolesCollection).Indexes().CreateOne(ctx, roleIndex); err != nil {
		return fmt.Errorf("ensure role indexes: %w", err)
	}
	return nil
}
