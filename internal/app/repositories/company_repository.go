package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/logger"
)

// CompanyRepository handles company collection operations
type CompanyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{
		collection: db.Collection(CollectionCompanies),
	}
}

// Insert stores a new company document and returns the generated hex id
func (r *CompanyRepository) Insert(ctx context.Context, company *models.Company) (string, error) {
	result, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting company")
		return "", fmt.Errorf("error inserting company: %w", err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return objectID.Hex(), nil
}

// List retrieves all companies
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying companies")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer cursor.Close(ctx)

	companies := []*models.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("error decoding companies: %w", err)
	}
	return companies, nil
}

// Replace overwrites a company document wholesale and reports the
// matched count
func (r *CompanyRepository) Replace(ctx context.Context, id string, company *models.Company) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperrors.ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": companyPatch(company)})
	if err != nil {
		logger.Error().Err(err).Str("companyID", id).Msg("Error updating company")
		return 0, fmt.Errorf("error updating company: %w", err)
	}
	return result.MatchedCount, nil
}

// companyPatch maps a full company document into a $set patch,
// leaving _id untouched
func companyPatch(company *models.Company) bson.M {
	return bson.M{
		"name":            company.Name,
		"industry":        company.Industry,
		"logo":            company.Logo,
		"recruitmentDate": company.RecruitmentDate,
		"ctc":             company.CTC,
		"roles":           company.Roles,
		"status":          company.Status,
		"eligibility":     company.Eligibility,
		"additionalInfo":  company.AdditionalInfo,
	}
}

// SetLogo updates only the logo URL and reports the matched count
func (r *CompanyRepository) SetLogo(ctx context.Context, id, logoURL string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperrors.ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"logo": logoURL}})
	if err != nil {
		logger.Error().Err(err).Str("companyID", id).Msg("Error setting company logo")
		return 0, fmt.Errorf("error setting company logo: %w", err)
	}
	return result.MatchedCount, nil
}

// Delete removes a company document and reports the deleted count
func (r *CompanyRepository) Delete(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperrors.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		logger.Error().Err(err).Str("companyID", id).Msg("Error deleting company")
		return 0, fmt.Errorf("error deleting company: %w", err)
	}
	return result.DeletedCount, nil
}
