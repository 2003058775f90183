package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationTargetAll is the sentinel target meaning every student
const NotificationTargetAll = "all"

// Notification represents one delivered message. Records are written
// once and never updated or deleted.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Message   string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	StudentID string             `bson:"student_id" json:"student_id"`
}
