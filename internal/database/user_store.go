package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
)

// UserStore answers the role lookups performed by the authorization guards.
type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(client *mongo.Client, dbName string) *UserStore {
	return &UserStore{
		users: client.Database(dbName).Collection("users"),
	}
}

// RoleByEmail returns the stored role for an email, or RoleUnset when no
// user record exists.
func (s *UserStore) RoleByEmail(ctx context.Context, email string) (models.UserRole, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.RoleUnset, nil
	}
	if err != nil {
		return models.RoleUnset, err
	}
	return user.Role, nil
}
