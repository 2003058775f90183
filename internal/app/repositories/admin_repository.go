package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/logger"
)

// AdminRepository handles admin collection operations
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{
		collection: db.Collection(CollectionAdmins),
	}
}

// FindByEmail retrieves an admin by email
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.collection.FindOne(ctx, bson.M{"admin_email": email}).Decode(admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error finding admin by email")
		return nil, fmt.Errorf("error finding admin by email: %w", err)
	}
	return admin, nil
}

// FindByID retrieves an admin by the hex form of their ObjectID
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	admin := &models.Admin{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("adminID", id).Msg("Error finding admin by id")
		return nil, fmt.Errorf("error finding admin: %w", err)
	}
	return admin, nil
}

// Insert stores a new admin document and returns the generated hex id
func (r *AdminRepository) Insert(ctx context.Context, admin *models.Admin) (string, error) {
	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting admin")
		return "", fmt.Errorf("error inserting admin: %w", err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return objectID.Hex(), nil
}
