package dto

import "github.com/ssgi/placementms/internal/app/models"

// RegisterStudentRequest represents a new student registration
type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterStudentResponse carries the generated student identifier
type RegisterStudentResponse struct {
	StudentID string `json:"student_id" example:"SSGI20483920"`
}

// StudentLoginRequest represents student login credentials
type StudentLoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// StudentLoginResponse represents a successful student login
type StudentLoginResponse struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Token       string `json:"token"`
}

// VerifyTokenResponse carries the identifier decoded from a valid token
type VerifyTokenResponse struct {
	StudentID string `json:"student_id"`
}

// CreateProfileRequest is the one-time profile population payload.
// All four sections are required; the sparse update flow handles
// everything after this.
type CreateProfileRequest struct {
	BasicDetails    models.BasicDetails     `json:"basic_details" binding:"required"`
	TenthDetails    models.BoardDetails     `json:"tenth_details" binding:"required"`
	TwelfthDetails  models.BoardDetails     `json:"twelfth_details" binding:"required"`
	SemesterDetails []models.SemesterDetail `json:"semester_details" binding:"required"`
}

// UpdateProfileRequest is a sparse profile update. Every field is a
// pointer so that "absent" and "explicitly zero" stay distinguishable:
// only non-nil fields make it into the stored document.
type UpdateProfileRequest struct {
	BasicDetails    *BasicDetailsUpdate    `json:"basic_details,omitempty"`
	TenthDetails    *BoardDetailsUpdate    `json:"tenth_details,omitempty"`
	TwelfthDetails  *BoardDetailsUpdate    `json:"twelfth_details,omitempty"`
	SemesterDetails []SemesterDetailUpdate `json:"semester_details,omitempty"`
}

// BasicDetailsUpdate carries optional personal detail fields
type BasicDetailsUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	FatherName  *string `json:"father_name,omitempty"`
	MotherName  *string `json:"mother_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Branch      *string `json:"branch,omitempty"`
}

// BoardDetailsUpdate carries optional 10th/12th board fields
type BoardDetailsUpdate struct {
	SchoolLocation *string  `json:"school_location,omitempty"`
	Percentage     *float64 `json:"percentage,omitempty"`
	Board          *string  `json:"board,omitempty"`
	MarksheetURL   *string  `json:"marksheet_url,omitempty"`
	YearOfPassing  *int     `json:"year_of_passing,omitempty"`
}

// SemesterDetailUpdate carries optional fields for one semester entry.
// A non-nil SemesterDetails list replaces the stored list wholesale.
type SemesterDetailUpdate struct {
	Semester     *int     `json:"semester,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	NoBacklogs   *int     `json:"no_backlogs,omitempty"`
	MarksheetURL *string  `json:"marksheet_url,omitempty"`
}

// StudentProfileResponse is the public projection of a student document
type StudentProfileResponse struct {
	Name            string                  `json:"name"`
	Contact         string                  `json:"contact"`
	Email           string                  `json:"email"`
	BasicDetails    *models.BasicDetails    `json:"basic_details,omitempty"`
	TenthDetails    *models.BoardDetails    `json:"tenth_details,omitempty"`
	TwelfthDetails  *models.BoardDetails    `json:"twelfth_details,omitempty"`
	SemesterDetails []models.SemesterDetail `json:"semester_details,omitempty"`
}

// NewStudentProfileResponse projects a student document, dropping the
// password hash and storage id
func NewStudentProfileResponse(s *models.Student) *StudentProfileResponse {
	return &StudentProfileResponse{
		Name:            s.Name,
		Contact:         s.Phone,
		Email:           s.Email,
		BasicDetails:    s.BasicDetails,
		TenthDetails:    s.TenthDetails,
		TwelfthDetails:  s.TwelfthDetails,
		SemesterDetails: s.SemesterDetails,
	}
}

// MarksheetURLs carries the uploaded marksheet URLs back to the caller
type MarksheetURLs struct {
	TenthMarksheetURL     string   `json:"tenth_marksheet_url"`
	TwelfthMarksheetURL   string   `json:"twelfth_marksheet_url"`
	SemesterMarksheetURLs []string `json:"semester_marksheets_urls"`
}
