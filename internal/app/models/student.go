package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student represents a student document in the students collection.
// student_id is assigned once at registration and never changes;
// email is unique across the collection.
type Student struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	StudentID       string             `bson:"student_id" json:"student_id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	Phone           string             `bson:"phone" json:"phone"`
	IsVerified      bool               `bson:"is_verified" json:"is_verified"`
	BasicDetails    *BasicDetails      `bson:"basic_details,omitempty" json:"basic_details,omitempty"`
	TenthDetails    *BoardDetails      `bson:"tenth_details,omitempty" json:"tenth_details,omitempty"`
	TwelfthDetails  *BoardDetails      `bson:"twelfth_details,omitempty" json:"twelfth_details,omitempty"`
	SemesterDetails []SemesterDetail   `bson:"semester_details,omitempty" json:"semester_details,omitempty"`
}

// BasicDetails holds the student's personal details
type BasicDetails struct {
	FullName    string `bson:"full_name,omitempty" json:"full_name,omitempty"`
	FatherName  string `bson:"father_name,omitempty" json:"father_name,omitempty"`
	MotherName  string `bson:"mother_name,omitempty" json:"mother_name,omitempty"`
	DateOfBirth string `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Branch      string `bson:"branch,omitempty" json:"branch,omitempty"`
}

// BoardDetails holds 10th or 12th board results. The marksheet URL is
// filled in later by the marksheet upload flow.
type BoardDetails struct {
	SchoolLocation string  `bson:"school_location,omitempty" json:"school_location,omitempty"`
	Percentage     float64 `bson:"percentage,omitempty" json:"percentage,omitempty"`
	Board          string  `bson:"board,omitempty" json:"board,omitempty"`
	MarksheetURL   string  `bson:"marksheet_url,omitempty" json:"marksheet_url,omitempty"`
	YearOfPassing  int     `bson:"year_of_passing,omitempty" json:"year_of_passing,omitempty"`
}

// SemesterDetail holds one semester's results. The stored list is
// positional; marksheet URLs are keyed by index.
type SemesterDetail struct {
	Semester     int     `bson:"semester,omitempty" json:"semester,omitempty"`
	CGPA         float64 `bson:"cgpa,omitempty" json:"cgpa,omitempty"`
	NoBacklogs   int     `bson:"no_backlogs,omitempty" json:"no_backlogs,omitempty"`
	MarksheetURL string  `bson:"marksheet_url,omitempty" json:"marksheet_url,omitempty"`
}
