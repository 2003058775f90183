package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents an admin document. Admins authenticate with the hex
// form of their generated ObjectID; admin_email is unique.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"admin_id"`
	Name     string             `bson:"admin_name" json:"admin_name"`
	Email    string             `bson:"admin_email" json:"admin_email"`
	Contact  string             `bson:"admin_contact" json:"admin_contact"`
	Password string             `bson:"admin_password" json:"-"`
}
