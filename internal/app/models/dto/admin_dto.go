package dto

import "github.com/ssgi/placementms/internal/app/models"

// AdminRegisterRequest represents a new admin registration
type AdminRegisterRequest struct {
	AdminName     string `json:"admin_name" binding:"required"`
	AdminEmail    string `json:"admin_email" binding:"required"`
	AdminContact  string `json:"admin_contact" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required"`
}

// AdminRegisterResponse carries the generated admin identifier
type AdminRegisterResponse struct {
	AdminID string `json:"admin_id" example:"507f1f77bcf86cd799439011"`
}

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	AdminID       string `json:"admin_id" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required"`
}

// AdminLoginResponse represents a successful admin login
type AdminLoginResponse struct {
	AdminName   string `json:"admin_name"`
	AdminEmail  string `json:"admin_email"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// StudentListResponse is the admin view over all students with
// verification tallies
type StudentListResponse struct {
	TotalStudents       int               `json:"total_students"`
	VerifiedStudents    int               `json:"verified_students"`
	NotVerifiedStudents int               `json:"not_verified_students"`
	AllStudents         []*models.Student `json:"all_students"`
}
