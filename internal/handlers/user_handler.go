package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/middleware"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
)

type UserHandler struct {
	collection *mongo.Collection
}

func NewUserHandler(client *mongo.Client, dbName string) *UserHandler {
	return &UserHandler{
		collection: client.Database(dbName).Collection("users"),
	}
}

// GetUsers retrieves all users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// CreateUser upserts a user by email. Registering an existing email is a
// no-op that reports the duplicate instead of erroring.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if newUser.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existingUser models.User
	err := h.collection.FindOne(ctx, bson.M{"email": newUser.Email}).Decode(&existingUser)
	if err == nil {
		respondJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	} else if err != mongo.ErrNoDocuments {
		respondError(w, http.StatusInternalServerError, "Failed to check email availability")
		return
	}

	newUser.ID = primitive.NewObjectID()
	newUser.Role = models.RoleUnset
	newUser.CreatedAt = time.Now()

	if _, err := h.collection.InsertOne(ctx, newUser); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, newUser)
}

// PromoteAdmin sets a user's role to admin
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleAdmin)
}

// PromoteInstructor sets a user's role to instructor
func (h *UserHandler) PromoteInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	userID := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update user role")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{
		"matched":  result.MatchedCount,
		"modified": result.ModifiedCount,
	})
}

// IsAdmin reports whether the requested email holds the admin role. The
// caller may only ask about their own identity.
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	role, ok := h.roleForSelf(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"admin": role == models.RoleAdmin})
}

// IsInstructor reports whether the requested email holds the instructor role.
func (h *UserHandler) IsInstructor(w http.ResponseWriter, r *http.Request) {
	role, ok := h.roleForSelf(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"instructor": role == models.RoleInstructor})
}

// roleForSelf resolves the stored role for the path email after checking it
// matches the authenticated identity. A mismatch is a terminal 403.
func (h *UserHandler) roleForSelf(w http.ResponseWriter, r *http.Request) (models.UserRole, bool) {
	email := mux.Vars(r)["email"]

	claimEmail, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return models.RoleUnset, false
	}
	if claimEmail != email {
		respondError(w, http.StatusForbidden, "forbidden access")
		return models.RoleUnset, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := h.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.RoleUnset, true
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return models.RoleUnset, false
	}
	return user.Role, true
}
