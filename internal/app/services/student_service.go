package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/auth"
	"github.com/ssgi/placementms/internal/pkg/logger"
	"github.com/ssgi/placementms/internal/pkg/mediastore"
	"github.com/ssgi/placementms/internal/pkg/validation"
)

// studentIDPrefix plus 6 random decimal digits forms an issued id
const studentIDPrefix = "SSGI20"

// maxIDAttempts bounds how often registration re-rolls a colliding id
const maxIDAttempts = 5

// StudentService defines the interface for student-related operations
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (string, error)
	Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetProfile(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error)
	CreateProfile(ctx context.Context, studentID string, req *dto.CreateProfileRequest) error
	UpdateProfile(ctx context.Context, studentID string, req *dto.UpdateProfileRequest) error
	UploadMarksheets(ctx context.Context, studentID string, tenth, twelfth io.Reader, semesters []io.Reader) (*dto.MarksheetURLs, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	uploader mediastore.Uploader
	jwt      *auth.JWTService
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, uploader mediastore.Uploader, jwt *auth.JWTService) StudentService {
	return &studentServiceImpl{
		students: students,
		uploader: uploader,
		jwt:      jwt,
	}
}

// Register validates the payload, checks email uniqueness, hashes the
// password and stores a new student with a freshly issued identifier.
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest) (string, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return "", err
	}
	if err := validation.ValidateContact(req.Contact); err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return "", err
	}

	// Uniqueness pre-check; the collection carries no unique index
	_, err := s.students.FindByEmail(ctx, req.Email)
	if err == nil {
		return "", apperrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return "", err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	studentID, err := s.generateStudentID(ctx)
	if err != nil {
		return "", err
	}

	student := &models.Student{
		StudentID:  studentID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Phone:      req.Contact,
		IsVerified: false,
	}
	if err := s.students.Insert(ctx, student); err != nil {
		return "", err
	}

	logger.Info().Str("studentID", studentID).Msg("Student registered")
	return studentID, nil
}

// generateStudentID issues a new identifier, re-rolling on the
// (unlikely) collision with an existing student.
func (s *studentServiceImpl) generateStudentID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := fmt.Sprintf("%s%06d", studentIDPrefix, 100000+rand.Intn(900000))

		_, err := s.students.FindByStudentID(ctx, id)
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		logger.Warn().Str("studentID", id).Msg("Student id collision, retrying")
	}
	return "", fmt.Errorf("failed to issue a unique student id after %d attempts", maxIDAttempts)
}

// Login authenticates a student by identifier and password
func (s *studentServiceImpl) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	student, err := s.students.FindByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwt.GenerateToken(student.StudentID, student.Email, auth.RoleStudent)
	if err != nil {
		return nil, err
	}

	return &dto.StudentLoginResponse{
		StudentID:   student.StudentID,
		StudentName: student.Name,
		Token:       token,
	}, nil
}

// VerifyToken validates a student token and confirms the encoded
// student still exists, returning the decoded identifier
func (s *studentServiceImpl) VerifyToken(ctx context.Context, token string) (string, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return "", err
	}

	if _, err := s.students.FindByStudentID(ctx, claims.SubjectID); err != nil {
		return "", err
	}
	return claims.SubjectID, nil
}

// GetProfile returns the public projection of a student document
func (s *studentServiceImpl) GetProfile(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error) {
	student, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentProfileResponse(student), nil
}

// CreateProfile performs the one-time profile population: basic, tenth
// and twelfth details are written wholesale along with the full
// semester sequence. Fields left at their zero value are dropped by
// the omitempty bson tags.
func (s *studentServiceImpl) CreateProfile(ctx context.Context, studentID string, req *dto.CreateProfileRequest) error {
	if _, err := s.students.FindByStudentID(ctx, studentID); err != nil {
		return err
	}

	patch := bson.M{
		"basic_details":    req.BasicDetails,
		"tenth_details":    req.TenthDetails,
		"twelfth_details":  req.TwelfthDetails,
		"semester_details": req.SemesterDetails,
	}

	matched, _, err := s.students.UpdateByStudentID(ctx, studentID, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateProfile applies a sparse update as one atomic patch. A zero
// modified count with a positive match is treated as success: the
// request was a no-op against identical stored values, and re-applying
// an update must stay idempotent.
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, studentID string, req *dto.UpdateProfileRequest) error {
	if _, err := s.students.FindByStudentID(ctx, studentID); err != nil {
		return err
	}

	patch := buildProfilePatch(req)
	if len(patch) == 0 {
		return apperrors.ErrEmptyUpdate
	}

	matched, _, err := s.students.UpdateByStudentID(ctx, studentID, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UploadMarksheets uploads the tenth, twelfth and semester marksheet
// files and persists all resulting URLs in a single atomic patch. Any
// upload failure aborts the operation before persistence, so a partial
// URL set is never stored. Semester URL order follows input order.
func (s *studentServiceImpl) UploadMarksheets(ctx context.Context, studentID string, tenth, twelfth io.Reader, semesters []io.Reader) (*dto.MarksheetURLs, error) {
	if _, err := s.students.FindByStudentID(ctx, studentID); err != nil {
		return nil, err
	}

	tenthURL, err := s.uploader.Upload(ctx, tenth, mediastore.FolderTenth)
	if err != nil {
		return nil, fmt.Errorf("%w: tenth marksheet: %v", apperrors.ErrUploadFailed, err)
	}
	twelfthURL, err := s.uploader.Upload(ctx, twelfth, mediastore.FolderTwelfth)
	if err != nil {
		return nil, fmt.Errorf("%w: twelfth marksheet: %v", apperrors.ErrUploadFailed, err)
	}

	semesterURLs := make([]string, 0, len(semesters))
	for i, file := range semesters {
		url, err := s.uploader.Upload(ctx, file, mediastore.FolderSemesters)
		if err != nil {
			return nil, fmt.Errorf("%w: semester marksheet %d: %v", apperrors.ErrUploadFailed, i, err)
		}
		semesterURLs = append(semesterURLs, url)
	}

	patch := buildMarksheetPatch(tenthURL, twelfthURL, semesterURLs)
	matched, _, err := s.students.UpdateByStudentID(ctx, studentID, patch)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	logger.Info().Str("studentID", studentID).Int("semesters", len(semesterURLs)).Msg("Marksheets uploaded")
	return &dto.MarksheetURLs{
		TenthMarksheetURL:     tenthURL,
		TwelfthMarksheetURL:   twelfthURL,
		SemesterMarksheetURLs: semesterURLs,
	}, nil
}
