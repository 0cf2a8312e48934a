package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUnset      UserRole = ""
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	PhotoURL  string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Role      UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
