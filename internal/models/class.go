package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

type Class struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorName   string             `json:"instructor_name" bson:"instructor_name"`
	InstructorEmail  string             `json:"instructor_email" bson:"instructor_email"`
	Price            float64            `json:"price" bson:"price"`
	AvailableSeats   int                `json:"available_seats" bson:"available_seats"`
	EnrolledStudents int                `json:"enrolled_students" bson:"enrolled_students"`
	Status           ClassStatus        `json:"status" bson:"status"`
	Feedback         string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
