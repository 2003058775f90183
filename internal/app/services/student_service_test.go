package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/auth"
	"github.com/ssgi/placementms/internal/pkg/mediastore"
	"github.com/ssgi/placementms/internal/pkg/validation"
)

func newTestStudentService(students StudentStore, uploader *fakeUploader) StudentService {
	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placementms.test",
	})
	return NewStudentService(students, uploader, jwt)
}

func TestRegisterIssuesWellFormedStudentID(t *testing.T) {
	var inserted *models.Student
	students := &fakeStudentStore{
		insertFn: func(ctx context.Context, s *models.Student) error {
			inserted = s
			return nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	studentID, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Asha Verma",
		Email:    "asha@college.edu",
		Contact:  "9876543210",
		Password: "longenough",
	})
	require.NoError(t, err)

	assert.Regexp(t, validation.StudentIDPattern, studentID)
	require.NotNil(t, inserted)
	assert.Equal(t, studentID, inserted.StudentID)
	assert.False(t, inserted.IsVerified)

	// Stored password must be a verifiable hash, never the plaintext
	assert.NotEqual(t, "longenough", inserted.Password)
	assert.True(t, auth.CheckPassword(inserted.Password, "longenough"))
}

func TestRegisterValidationOrdering(t *testing.T) {
	svc := newTestStudentService(&fakeStudentStore{}, &fakeUploader{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterStudentRequest{
		Name: "A", Email: "Bad@College.edu", Contact: "9876543210", Password: "longenough",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = svc.Register(ctx, &dto.RegisterStudentRequest{
		Name: "A", Email: "a@college.edu", Contact: "12345", Password: "longenough",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidContact)

	_, err = svc.Register(ctx, &dto.RegisterStudentRequest{
		Name: "A", Email: "a@college.edu", Contact: "9876543210", Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	students := &fakeStudentStore{
		findByEmailFn: func(ctx context.Context, email string) (*models.Student, error) {
			return &models.Student{Email: email}, nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	_, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name: "A", Email: "taken@college.edu", Contact: "9876543210", Password: "longenough",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRetriesOnIDCollision(t *testing.T) {
	var probed []string
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			probed = append(probed, id)
			if len(probed) == 1 {
				// first roll collides with an existing student
				return &models.Student{StudentID: id}, nil
			}
			return nil, apperrors.ErrStudentNotFound
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	studentID, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name: "A", Email: "a@college.edu", Contact: "9876543210", Password: "longenough",
	})
	require.NoError(t, err)
	require.Len(t, probed, 2)
	assert.Equal(t, probed[1], studentID)
	assert.NotEqual(t, probed[0], studentID)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("the-real-password")
	require.NoError(t, err)

	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id, Password: hashed}, nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	_, err = svc.Login(context.Background(), &dto.StudentLoginRequest{
		StudentID: "SSGI20123456",
		Password:  "not-the-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	hashed, err := auth.HashPassword("the-real-password")
	require.NoError(t, err)

	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id, Name: "Asha", Password: hashed}, nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	resp, err := svc.Login(context.Background(), &dto.StudentLoginRequest{
		StudentID: "SSGI20123456",
		Password:  "the-real-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "SSGI20123456", resp.StudentID)
	assert.Equal(t, "Asha", resp.StudentName)

	decoded, err := svc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "SSGI20123456", decoded)
}

func TestLoginUnknownStudent(t *testing.T) {
	svc := newTestStudentService(&fakeStudentStore{}, &fakeUploader{})

	_, err := svc.Login(context.Background(), &dto.StudentLoginRequest{
		StudentID: "SSGI20999999",
		Password:  "whatever-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateProfileEmptyPatchRejected(t *testing.T) {
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id}, nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	err := svc.UpdateProfile(context.Background(), "SSGI20123456", &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyUpdate)
}

func TestUpdateProfileNoOpIsSuccess(t *testing.T) {
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id}, nil
		},
		updateByStudentIDFn: func(ctx context.Context, id string, patch bson.M) (int64, int64, error) {
			// matched but nothing changed: stored values were already identical
			return 1, 0, nil
		},
	}
	svc := newTestStudentService(students, &fakeUploader{})

	err := svc.UpdateProfile(context.Background(), "SSGI20123456", &dto.UpdateProfileRequest{
		BasicDetails: &dto.BasicDetailsUpdate{Branch: strPtr("CSE")},
	})
	assert.NoError(t, err)
}

func TestUpdateProfileUnknownStudent(t *testing.T) {
	svc := newTestStudentService(&fakeStudentStore{}, &fakeUploader{})

	err := svc.UpdateProfile(context.Background(), "SSGI20999999", &dto.UpdateProfileRequest{
		BasicDetails: &dto.BasicDetailsUpdate{Branch: strPtr("CSE")},
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUploadMarksheetsSingleAtomicPatch(t *testing.T) {
	var patches []bson.M
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id}, nil
		},
		updateByStudentIDFn: func(ctx context.Context, id string, patch bson.M) (int64, int64, error) {
			patches = append(patches, patch)
			return 1, 1, nil
		},
	}
	uploader := &fakeUploader{}
	svc := newTestStudentService(students, uploader)

	urls, err := svc.UploadMarksheets(context.Background(), "SSGI20123456",
		strings.NewReader("tenth"), strings.NewReader("twelfth"),
		[]io.Reader{strings.NewReader("s1"), strings.NewReader("s2")})
	require.NoError(t, err)

	// tenth, twelfth, then semesters in input order
	assert.Equal(t, []string{
		mediastore.FolderTenth, mediastore.FolderTwelfth,
		mediastore.FolderSemesters, mediastore.FolderSemesters,
	}, uploader.calls)

	// exactly one persistence call carrying every URL
	require.Len(t, patches, 1)
	patch := patches[0]
	assert.Equal(t, urls.TenthMarksheetURL, patch["tenth_details.marksheet_url"])
	assert.Equal(t, urls.TwelfthMarksheetURL, patch["twelfth_details.marksheet_url"])
	require.Len(t, urls.SemesterMarksheetURLs, 2)
	assert.Equal(t, urls.SemesterMarksheetURLs[0], patch["semester_details.0.marksheet_url"])
	assert.Equal(t, urls.SemesterMarksheetURLs[1], patch["semester_details.1.marksheet_url"])
}

func TestUploadMarksheetsAbortsBeforePersistence(t *testing.T) {
	updates := 0
	students := &fakeStudentStore{
		findByStudentIDFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{StudentID: id}, nil
		},
		updateByStudentIDFn: func(ctx context.Context, id string, patch bson.M) (int64, int64, error) {
			updates++
			return 1, 1, nil
		},
	}
	uploader := &fakeUploader{failAt: 3} // first semester upload fails
	svc := newTestStudentService(students, uploader)

	_, err := svc.UploadMarksheets(context.Background(), "SSGI20123456",
		strings.NewReader("tenth"), strings.NewReader("twelfth"),
		[]io.Reader{strings.NewReader("s1"), strings.NewReader("s2")})

	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
	assert.Zero(t, updates, "no partial URL set may be stored")
	assert.Len(t, uploader.calls, 3, "uploads after the failure are not attempted")
}
