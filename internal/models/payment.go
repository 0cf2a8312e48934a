package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentEmail string             `json:"student_email" bson:"student_email"`
	Amount       float64            `json:"amount" bson:"amount"`
	ClassID      primitive.ObjectID `json:"class_id" bson:"class_id"`
	ClassName    string             `json:"class_name" bson:"class_name"`
	Date         time.Time          `json:"date" bson:"date"`
}
