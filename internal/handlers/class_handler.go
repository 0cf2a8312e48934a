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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
)

const popularLimit = 6

type ClassHandler struct {
	collection *mongo.Collection
}

func NewClassHandler(client *mongo.Client, dbName string) *ClassHandler {
	return &ClassHandler{
		collection: client.Database(dbName).Collection("classes"),
	}
}

// CreateClass handles an instructor creating a new class. New classes always
// start pending with no enrollments.
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var newClass models.Class
	if err := json.NewDecoder(r.Body).Decode(&newClass); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if newClass.Name == "" || newClass.InstructorEmail == "" {
		respondError(w, http.StatusBadRequest, "Class name and instructor email are required")
		return
	}

	newClass.ID = primitive.NewObjectID()
	newClass.Status = models.StatusPending
	newClass.EnrolledStudents = 0
	newClass.Feedback = ""
	newClass.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, newClass); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create class")
		return
	}

	respondJSON(w, http.StatusCreated, newClass)
}

// GetClasses retrieves all classes
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	h.findClasses(w, r, bson.M{}, nil)
}

// GetPopularClasses returns the top approved classes by enrollment count.
func (h *ClassHandler) GetPopularClasses(w http.ResponseWriter, r *http.Request) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled_students", Value: -1}}).
		SetLimit(popularLimit)
	h.findClasses(w, r, bson.M{"status": models.StatusApproved}, opts)
}

// GetPopularInstructors returns the first classes on record, projected to
// their instructor fields.
func (h *ClassHandler) GetPopularInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetLimit(popularLimit).
		SetProjection(bson.M{
			"instructor_name":  1,
			"instructor_email": 1,
			"image":            1,
		})

	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch instructors")
		return
	}
	defer cursor.Close(ctx)

	var instructors []bson.M
	if err = cursor.All(ctx, &instructors); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding instructors")
		return
	}

	respondJSON(w, http.StatusOK, instructors)
}

// GetClassesByInstructor retrieves the classes created by one instructor
func (h *ClassHandler) GetClassesByInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	h.findClasses(w, r, bson.M{"instructor_email": email}, nil)
}

// ApproveClass sets a class status to approved
func (h *ClassHandler) ApproveClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusApproved)
}

// DenyClass sets a class status to denied
func (h *ClassHandler) DenyClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusDenied)
}

// SetFeedback records admin feedback text on a class
func (h *ClassHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	var payload struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"feedback": payload.Feedback},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update feedback")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{
		"matched":  result.MatchedCount,
		"modified": result.ModifiedCount,
	})
}

func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.ClassStatus) {
	classID := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update class status")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{
		"matched":  result.MatchedCount,
		"modified": result.ModifiedCount,
	})
}

func (h *ClassHandler) findClasses(w http.ResponseWriter, r *http.Request, filter bson.M, opts *options.FindOptions) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = h.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = h.collection.Find(ctx, filter)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err = cursor.All(ctx, &classes); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding classes")
		return
	}

	respondJSON(w, http.StatusOK, classes)
}
