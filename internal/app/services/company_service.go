package services

import (
	"context"
	"fmt"
	"io"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/logger"
	"github.com/ssgi/placementms/internal/pkg/mediastore"
)

// CompanyService defines the interface for company-related operations
type CompanyService interface {
	Create(ctx context.Context, company *models.Company) (string, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, id string, company *models.Company) error
	Delete(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id string, file io.Reader) (string, error)
}

// companyServiceImpl implements the CompanyService interface
type companyServiceImpl struct {
	companies CompanyStore
	uploader  mediastore.Uploader
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companies CompanyStore, uploader mediastore.Uploader) CompanyService {
	return &companyServiceImpl{
		companies: companies,
		uploader:  uploader,
	}
}

// Create stores a new company document
func (s *companyServiceImpl) Create(ctx context.Context, company *models.Company) (string, error) {
	id, err := s.companies.Insert(ctx, company)
	if err != nil {
		return "", err
	}
	logger.Info().Str("companyID", id).Str("name", company.Name).Msg("Company added")
	return id, nil
}

// List retrieves all companies
func (s *companyServiceImpl) List(ctx context.Context) ([]*models.Company, error) {
	return s.companies.List(ctx)
}

// Update replaces a company document wholesale
func (s *companyServiceImpl) Update(ctx context.Context, id string, company *models.Company) error {
	matched, err := s.companies.Replace(ctx, id, company)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company document
func (s *companyServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.companies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// UploadLogo uploads a logo file and persists its URL on the company
func (s *companyServiceImpl) UploadLogo(ctx context.Context, id string, file io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, file, mediastore.FolderCompanyLogos)
	if err != nil {
		return "", fmt.Errorf("%w: company logo: %v", apperrors.ErrUploadFailed, err)
	}

	matched, err := s.companies.SetLogo(ctx, id, url)
	if err != nil {
		return "", err
	}
	if matched == 0 {
		return "", apperrors.ErrCompanyNotFound
	}
	return url, nil
}
