package services

import (
	"context"
	"time"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
	"github.com/ssgi/placementms/internal/pkg/logger"
)

// NotificationService defines the interface for notification delivery
type NotificationService interface {
	Send(ctx context.Context, message, target string) (int, error)
	ListFor(ctx context.Context, studentID string) ([]dto.NotificationItem, error)
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	notifications NotificationStore
	students      StudentStore
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notifications NotificationStore, students StudentStore) NotificationService {
	return &notificationServiceImpl{
		notifications: notifications,
		students:      students,
	}
}

// Send dispatches a message. The sentinel target "all" fans out to one
// record per registered student in a single batch insert; any other
// target gets exactly one record without an existence check, so
// notifying an unknown id silently succeeds. Returns the number of
// records written.
func (s *notificationServiceImpl) Send(ctx context.Context, message, target string) (int, error) {
	now := time.Now().UTC()

	if target == models.NotificationTargetAll {
		studentIDs, err := s.students.ListStudentIDs(ctx)
		if err != nil {
			return 0, err
		}
		if len(studentIDs) == 0 {
			return 0, apperrors.ErrNoStudents
		}

		batch := make([]*models.Notification, len(studentIDs))
		for i, id := range studentIDs {
			batch[i] = &models.Notification{
				Message:   message,
				Timestamp: now,
				StudentID: id,
			}
		}
		if err := s.notifications.InsertMany(ctx, batch); err != nil {
			return 0, err
		}

		logger.Info().Int("recipients", len(batch)).Msg("Notification sent to all students")
		return len(batch), nil
	}

	err := s.notifications.Insert(ctx, &models.Notification{
		Message:   message,
		Timestamp: now,
		StudentID: target,
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}

// ListFor returns notifications addressed to the student or to "all",
// projected down to message and timestamp
func (s *notificationServiceImpl) ListFor(ctx context.Context, studentID string) ([]dto.NotificationItem, error) {
	notifications, err := s.notifications.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationItem, len(notifications))
	for i, n := range notifications {
		items[i] = dto.NotificationItem{
			Message:   n.Message,
			Timestamp: n.Timestamp,
		}
	}
	return items, nil
}
