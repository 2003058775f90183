package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/auth"
	"github.com/ssgi/placementms/internal/pkg/logger"
	"github.com/ssgi/placementms/internal/pkg/validation"
)

// AdminService defines the interface for admin-related operations
type AdminService interface {
	Register(ctx context.Context, req *dto.AdminRegisterRequest) (string, error)
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	ListStudents(ctx context.Context) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	VerifyStudent(ctx context.Context, studentID string) (alreadyVerified bool, err error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	admins   AdminStore
	students StudentStore
	jwt      *auth.JWTService
}

// NewAdminService creates a new admin service instance
func NewAdminService(admins AdminStore, students StudentStore, jwt *auth.JWTService) AdminService {
	return &adminServiceImpl{
		admins:   admins,
		students: students,
		jwt:      jwt,
	}
}

// Register validates and stores a new admin, returning the generated id
func (s *adminServiceImpl) Register(ctx context.Context, req *dto.AdminRegisterRequest) (string, error) {
	if err := validation.ValidateEmail(req.AdminEmail); err != nil {
		return "", err
	}
	if err := validation.ValidateContact(req.AdminContact); err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(req.AdminPassword); err != nil {
		return "", err
	}

	_, err := s.admins.FindByEmail(ctx, req.AdminEmail)
	if err == nil {
		return "", apperrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return "", err
	}

	hashed, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	adminID, err := s.admins.Insert(ctx, &models.Admin{
		Name:     req.AdminName,
		Email:    req.AdminEmail,
		Contact:  req.AdminContact,
		Password: hashed,
	})
	if err != nil {
		return "", err
	}

	logger.Info().Str("adminID", adminID).Msg("Admin registered")
	return adminID, nil
}

// Login authenticates an admin by id and issues a 1-hour token.
// Expired tokens require a fresh login; there is no refresh flow.
func (s *adminServiceImpl) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.admins.FindByID(ctx, req.AdminID)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.AdminPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(admin.ID.Hex(), admin.Email, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		AdminName:   admin.Name,
		AdminEmail:  admin.Email,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// ListStudents returns every student along with verification tallies
func (s *adminServiceImpl) ListStudents(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	verified := 0
	for _, student := range students {
		if student.IsVerified {
			verified++
		}
	}

	return &dto.StudentListResponse{
		TotalStudents:       len(students),
		VerifiedStudents:    verified,
		NotVerifiedStudents: len(students) - verified,
		AllStudents:         students,
	}, nil
}

// GetStudent returns one student's full record for the admin view
func (s *adminServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.students.FindByStudentID(ctx, studentID)
}

// VerifyStudent flips is_verified to true. The transition is one-way;
// verifying an already-verified student is reported, not an error.
func (s *adminServiceImpl) VerifyStudent(ctx context.Context, studentID string) (bool, error) {
	student, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		return false, err
	}
	if student.IsVerified {
		return true, nil
	}

	matched, _, err := s.students.SetVerified(ctx, studentID)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, apperrors.ErrStudentNotFound
	}

	logger.Info().Str("studentID", studentID).Msg("Student verified")
	return false, nil
}
