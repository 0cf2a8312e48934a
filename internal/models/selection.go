package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Selection is a student's not-yet-paid intent to enroll in a class.
type Selection struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentEmail string             `json:"student_email" bson:"student_email"`
	ClassID      primitive.ObjectID `json:"class_id" bson:"class_id"`
	ClassName    string             `json:"class_name" bson:"class_name"`
	Price        float64            `json:"price" bson:"price"`
}
