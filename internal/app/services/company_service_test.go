package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/mediastore"
)

func TestCompanyUpdateUnknownID(t *testing.T) {
	companies := &fakeCompanyStore{
		replaceFn: func(ctx context.Context, id string, c *models.Company) (int64, error) {
			return 0, nil
		},
	}
	svc := NewCompanyService(companies, &fakeUploader{})

	err := svc.Update(context.Background(), "656f1c2b8f1b2c3d4e5f6a7c", &models.Company{Name: "Acme"})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCompanyDeleteUnknownID(t *testing.T) {
	companies := &fakeCompanyStore{
		deleteFn: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewCompanyService(companies, &fakeUploader{})

	err := svc.Delete(context.Background(), "656f1c2b8f1b2c3d4e5f6a7c")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCompanyUploadLogo(t *testing.T) {
	var gotID, gotURL string
	companies := &fakeCompanyStore{
		setLogoFn: func(ctx context.Context, id, logoURL string) (int64, error) {
			gotID, gotURL = id, logoURL
			return 1, nil
		},
	}
	uploader := &fakeUploader{}
	svc := NewCompanyService(companies, uploader)

	url, err := svc.UploadLogo(context.Background(), "656f1c2b8f1b2c3d4e5f6a7c", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, url, gotURL)
	assert.Equal(t, "656f1c2b8f1b2c3d4e5f6a7c", gotID)
	assert.Equal(t, []string{mediastore.FolderCompanyLogos}, uploader.calls)
}

func TestCompanyUploadLogoFailureSkipsPersistence(t *testing.T) {
	persisted := 0
	companies := &fakeCompanyStore{
		setLogoFn: func(ctx context.Context, id, logoURL string) (int64, error) {
			persisted++
			return 1, nil
		},
	}
	svc := NewCompanyService(companies, &fakeUploader{failAt: 1})

	_, err := svc.UploadLogo(context.Background(), "656f1c2b8f1b2c3d4e5f6a7c", strings.NewReader("png-bytes"))
	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
	assert.Zero(t, persisted)
}

func TestCompanyUploadLogoUnknownID(t *testing.T) {
	companies := &fakeCompanyStore{
		setLogoFn: func(ctx context.Context, id, logoURL string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewCompanyService(companies, &fakeUploader{})

	_, err := svc.UploadLogo(context.Background(), "656f1c2b8f1b2c3d4e5f6a7c", strings.NewReader("png-bytes"))
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}
