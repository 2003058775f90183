package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/logger"
)

// NotificationRepository handles notification collection operations
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		collection: db.Collection(CollectionNotifications),
	}
}

// Insert stores one notification record
func (r *NotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	_, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting notification")
		return fmt.Errorf("error inserting notification: %w", err)
	}
	return nil
}

// InsertMany stores a batch of notification records in one call
func (r *NotificationRepository) InsertMany(ctx context.Context, notifications []*models.Notification) error {
	docs := make([]interface{}, len(notifications))
	for i, n := range notifications {
		docs[i] = n
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		logger.Error().Err(err).Int("count", len(docs)).Msg("Error inserting notifications")
		return fmt.Errorf("error inserting notifications: %w", err)
	}
	return nil
}

// ListForStudent retrieves notifications targeting the given student
// or the sentinel "all" target, in storage-natural order
func (r *NotificationRepository) ListForStudent(ctx context.Context, studentID string) ([]*models.Notification, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"student_id": studentID},
		bson.M{"student_id": models.NotificationTargetAll},
	}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error querying notifications")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []*models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return notifications, nil
}
