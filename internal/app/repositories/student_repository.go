package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/logger"
)

// StudentRepository handles student collection operations
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection(CollectionStudents),
	}
}

// FindByStudentID retrieves a student by their issued identifier
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection.FindOne(ctx, bson.M{"student_id": studentID}).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error finding student by id")
		return nil, fmt.Errorf("error finding student: %w", err)
	}
	return student, nil
}

// FindByEmail retrieves a student by email
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error finding student by email")
		return nil, fmt.Errorf("error finding student by email: %w", err)
	}
	return student, nil
}

// Insert stores a new student document
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	_, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error inserting student: %w", err)
	}
	return nil
}

// List retrieves all students
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// ListStudentIDs retrieves every issued student identifier
func (r *StudentRepository) ListStudentIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying student ids")
		return nil, fmt.Errorf("error querying student ids: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			StudentID string `bson:"student_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding student id: %w", err)
		}
		ids = append(ids, doc.StudentID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student ids: %w", err)
	}
	return ids, nil
}

// UpdateByStudentID applies one atomic $set patch keyed by student
// identifier and reports matched/modified counts. Interpreting a zero
// modified count is the caller's concern.
func (r *StudentRepository) UpdateByStudentID(ctx context.Context, studentID string, patch bson.M) (matched, modified int64, err error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"student_id": studentID}, bson.M{"$set": patch})
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error updating student")
		return 0, 0, fmt.Errorf("error updating student: %w", err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

// SetVerified flips the one-way is_verified flag to true
func (r *StudentRepository) SetVerified(ctx context.Context, studentID string) (matched, modified int64, err error) {
	return r.UpdateByStudentID(ctx, studentID, bson.M{"is_verified": true})
}
