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

type SelectionHandler struct {
	collection *mongo.Collection
}

func NewSelectionHandler(client *mongo.Client, dbName string) *SelectionHandler {
	return &SelectionHandler{
		collection: client.Database(dbName).Collection("selections"),
	}
}

// CreateSelection records a student's intent to enroll in a class
func (h *SelectionHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	var selection models.Selection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if selection.StudentEmail == "" || selection.ClassID == primitive.NilObjectID {
		respondError(w, http.StatusBadRequest, "Student email and class ID are required")
		return
	}

	selection.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, selection); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create selection")
		return
	}

	respondJSON(w, http.StatusCreated, selection)
}

// GetSelections lists a student's pending selections
func (h *SelectionHandler) GetSelections(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{"student_email": email})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch selections")
		return
	}
	defer cursor.Close(ctx)

	var selections []models.Selection
	if err = cursor.All(ctx, &selections); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding selections")
		return
	}

	respondJSON(w, http.StatusOK, selections)
}

// DeleteSelection removes one selection owned by the caller
func (h *SelectionHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(selectionID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid selection ID")
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID, "student_email": email})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete selection")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Selection not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deleted": result.DeletedCount})
}
