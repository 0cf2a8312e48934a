package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/middleware"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/payments"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/utils"
)

var (
	errNoSeats     = errors.New("no seats available")
	errNoSelection = errors.New("selection not found")
)

type PaymentHandler struct {
	client     *mongo.Client
	payments   *mongo.Collection
	selections *mongo.Collection
	classes    *mongo.Collection
	gateway    payments.Gateway
	mailer     *utils.Mailer
}

func NewPaymentHandler(client *mongo.Client, dbName string, gateway payments.Gateway, mailer *utils.Mailer) *PaymentHandler {
	db := client.Database(dbName)
	return &PaymentHandler{
		client:     client,
		payments:   db.Collection("payments"),
		selections: db.Collection("selections"),
		classes:    db.Collection("classes"),
		gateway:    gateway,
		mailer:     mailer,
	}
}

// CreatePaymentIntent asks the gateway for a card payment intent and returns
// its client secret.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Price <= 0 {
		respondError(w, http.StatusBadRequest, "Price must be positive")
		return
	}

	clientSecret, err := h.gateway.CreateIntent(r.Context(), payload.Price)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// CapturePayment records a payment, clears the paid selection, and moves one
// seat from available to enrolled. The three writes commit or abort together.
func (h *PaymentHandler) CapturePayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SelectionID string  `json:"selection_id"`
		ClassID     string  `json:"class_id"`
		ClassName   string  `json:"class_name"`
		Amount      float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.SelectionID == "" || payload.ClassID == "" || payload.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Selection ID, class ID, and amount are required")
		return
	}

	selectionObjID, err := primitive.ObjectIDFromHex(payload.SelectionID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid selection ID")
		return
	}
	classObjID, err := primitive.ObjectIDFromHex(payload.ClassID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.client.StartSession()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to start transaction")
		return
	}
	defer session.EndSession(ctx)

	payment := models.Payment{
		ID:           primitive.NewObjectID(),
		StudentEmail: email,
		Amount:       payload.Amount,
		ClassID:      classObjID,
		ClassName:    payload.ClassName,
		Date:         time.Now(),
	}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := h.payments.InsertOne(sc, payment); err != nil {
			return nil, err
		}
		deleted, err := h.selections.DeleteOne(sc, bson.M{"_id": selectionObjID, "student_email": email})
		if err != nil {
			return nil, err
		}
		if deleted.DeletedCount == 0 {
			return nil, errNoSelection
		}
		result, err := h.classes.UpdateOne(sc,
			bson.M{"_id": classObjID, "available_seats": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"available_seats": -1, "enrolled_students": 1}},
		)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, errNoSeats
		}
		return nil, nil
	})
	if errors.Is(err, errNoSelection) {
		respondError(w, http.StatusNotFound, "Selection not found")
		return
	}
	if errors.Is(err, errNoSeats) {
		respondError(w, http.StatusConflict, "No seats available")
		return
	}
	if err != nil {
		log.Printf("Payment capture failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	if h.mailer != nil {
		go func() {
			if err := h.mailer.SendBookingConfirmation(email, payload.ClassName, payload.Amount); err != nil {
				log.Printf("Failed to send booking confirmation: %v", err)
			}
		}()
	}

	respondJSON(w, http.StatusCreated, payment)
}

// GetPayments lists a student's payment history, newest first
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := h.payments.Find(ctx, bson.M{"student_email": email}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	defer cursor.Close(ctx)

	var history []models.Payment
	if err = cursor.All(ctx, &history); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding payments")
		return
	}

	respondJSON(w, http.StatusOK, history)
}
