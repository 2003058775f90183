package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company represents a recruiting company document
type Company struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Industry        string             `bson:"industry" json:"industry"`
	Logo            string             `bson:"logo,omitempty" json:"logo,omitempty"`
	RecruitmentDate string             `bson:"recruitmentDate" json:"recruitmentDate"`
	CTC             string             `bson:"ctc" json:"ctc"`
	Roles           []string           `bson:"roles" json:"roles"`
	Status          string             `bson:"status" json:"status"`
	Eligibility     Eligibility        `bson:"eligibility" json:"eligibility"`
	AdditionalInfo  string             `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
}

// Eligibility holds the cutoff criteria for a company's drive
type Eligibility struct {
	MinScore        int `bson:"minScore" json:"minScore"`
	BacklogsAllowed int `bson:"backlogsAllowed" json:"backlogsAllowed"`
}
