package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
)

func TestSendToAllFansOutPerStudent(t *testing.T) {
	students := &fakeStudentStore{
		listStudentIDsFn: func(ctx context.Context) ([]string, error) {
			return []string{"SSGI20111111", "SSGI20222222", "SSGI20333333"}, nil
		},
	}
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, students)

	count, err := svc.Send(context.Background(), "Placement drive on Monday", models.NotificationTargetAll)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, store.inserted, 3)

	// one record per student, all sharing a single batch timestamp
	batchTime := store.inserted[0].Timestamp
	targets := make([]string, 0, len(store.inserted))
	for _, n := range store.inserted {
		assert.Equal(t, "Placement drive on Monday", n.Message)
		assert.Equal(t, batchTime, n.Timestamp)
		targets = append(targets, n.StudentID)
	}
	assert.Equal(t, []string{"SSGI20111111", "SSGI20222222", "SSGI20333333"}, targets)
}

func TestSendToAllWithNoStudents(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{}, &fakeStudentStore{})

	_, err := svc.Send(context.Background(), "anyone there?", models.NotificationTargetAll)
	assert.ErrorIs(t, err, apperrors.ErrNoStudents)
}

func TestSendToSingleStudent(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, &fakeStudentStore{})

	count, err := svc.Send(context.Background(), "Your documents cleared", "SSGI20123456")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "SSGI20123456", store.inserted[0].StudentID)
}

func TestSendToUnknownStudentStillSucceeds(t *testing.T) {
	// Single-target sends skip the existence check
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, &fakeStudentStore{})

	count, err := svc.Send(context.Background(), "hello", "SSGI20999999")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListForProjectsMessageAndTimestamp(t *testing.T) {
	sent := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store := &fakeNotificationStore{
		listFn: func(ctx context.Context, studentID string) ([]*models.Notification, error) {
			return []*models.Notification{
				{Message: "first", Timestamp: sent, StudentID: studentID},
				{Message: "second", Timestamp: sent.Add(time.Hour), StudentID: models.NotificationTargetAll},
			}, nil
		},
	}
	svc := NewNotificationService(store, &fakeStudentStore{})

	items, err := svc.ListFor(context.Background(), "SSGI20123456")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Message)
	assert.Equal(t, sent, items[0].Timestamp)
	assert.Equal(t, "second", items[1].Message)
}

func TestListForEmpty(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{}, &fakeStudentStore{})

	items, err := svc.ListFor(context.Background(), "SSGI20123456")
	require.NoError(t, err)
	assert.Empty(t, items)
}
