package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/auth"
)

func newTestAdminService(admins AdminStore, students StudentStore) AdminService {
	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placementms.test",
	})
	return NewAdminService(admins, students, jwt)
}

func TestAdminRegisterHashesPassword(t *testing.T) {
	var inserted *models.Admin
	admins := &fakeAdminStore{
		insertFn: func(ctx context.Context, a *models.Admin) (string, error) {
			inserted = a
			return "656f1c2b8f1b2c3d4e5f6a7b", nil
		},
	}
	svc := newTestAdminService(admins, &fakeStudentStore{})

	id, err := svc.Register(context.Background(), &dto.AdminRegisterRequest{
		AdminName:     "Placement Officer",
		AdminEmail:    "tpo@college.edu",
		AdminContact:  "9876543210",
		AdminPassword: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "656f1c2b8f1b2c3d4e5f6a7b", id)
	require.NotNil(t, inserted)
	assert.NotEqual(t, "longenough", inserted.Password)
	assert.True(t, auth.CheckPassword(inserted.Password, "longenough"))
}

func TestAdminRegisterDuplicateEmail(t *testing.T) {
	admins := &fakeAdminStore{
		findByEmailFn: func(ctx context.Context, email string) (*models.Admin, error) {
			return &models.Admin{Email: email}, nil
		},
	}
	svc := newTestAdminService(admins, &fakeStudentStore{})

	_, err := svc.Register(context.Background(), &dto.AdminRegisterRequest{
		AdminName:     "P",
		AdminEmail:    "taken@college.edu",
		AdminContact:  "9876543210",
		AdminPassword: "longenough",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAdminLoginIssuesAdminRoleToken(t *testing.T) {
	hashed, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	oid := primitive.NewObjectID()
	admins := &fakeAdminStore{
		findByIDFn: func(ctx context.Context, id string) (*models.Admin, error) {
			return &models.Admin{ID: oid, Name: "TPO", Email: "tpo@college.edu", Password: hashed}, nil
		},
	}
	svc := newTestAdminService(admins, &fakeStudentStore{})

	resp, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		AdminID:       oid.Hex(),
		AdminPassword: "admin-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "TPO", resp.AdminName)
	assert.Equal(t, 3600, resp.ExpiresIn)

	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placementms.test",
	})
	claims, err := jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, oid.Hex(), claims.SubjectID)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	admins := &fakeAdminStore{
		findByIDFn: func(ctx context.Context, id string) (*models.Admin, error) {
			return &models.Admin{Password: hashed}, nil
		},
	}
	svc := newTestAdminService(admins, &fakeStudentStore{})

	_, err = svc.Login(context.Background(), &dto.AdminLoginRequest{
		AdminID:       primitive.NewObjectID().Hex(),
		AdminPassword: "guess",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestListStudentsTallies(t *testing.T) {
	students := &fakeStudentStore{
		listFn: func(ctx context.Context) ([]*models.Student, error) {
			return []*models.Student{
				{StudentID: "SSGI20111111", IsVerified: true},
				{StudentID: "SSGI20222222"},
				{StudentID: "SSGI20333333", IsVerified: true},
			}, nil
		},
	}
	svc := newTestAdminService(&fakeAdminStore{}, students)

	resp, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalStudents)
	assert.Equal(t, 2, resp.VerifiedStudents)
	assert.Equal(t, 1, resp.NotVerifiedStudents)
	assert.Len(t, resp.AllStudents, 3)
}

func TestVerifyStudentFirstTime(t *testing.T) {
	flipped := 0
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id}, nil
		},
		setVerifiedFn: func(ctx context.Context, id string) (int64, int64, error) {
			flipped++
			return 1, 1, nil
		},
	}
	svc := newTestAdminService(&fakeAdminStore{}, students)

	already, err := svc.VerifyStudent(context.Background(), "SSGI20123456")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, 1, flipped)
}

func TestVerifyStudentAlreadyVerified(t *testing.T) {
	flipped := 0
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id, IsVerified: true}, nil
		},
		setVerifiedFn: func(ctx context.Context, id string) (int64, int64, error) {
			flipped++
			return 1, 1, nil
		},
	}
	svc := newTestAdminService(&fakeAdminStore{}, students)

	already, err := svc.VerifyStudent(context.Background(), "SSGI20123456")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Zero(t, flipped, "verification is one-way and not re-applied")
}

func TestVerifyStudentUnknown(t *testing.T) {
	svc := newTestAdminService(&fakeAdminStore{}, &fakeStudentStore{})

	_, err := svc.VerifyStudent(context.Background(), "SSGI20999999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
