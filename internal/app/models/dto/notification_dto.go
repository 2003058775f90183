package dto

import "time"

// SendNotificationRequest dispatches a message to one student or,
// with the target "all", to every registered student
type SendNotificationRequest struct {
	Message   string `json:"message" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// NotificationItem is the student-facing projection of a notification
type NotificationItem struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationListResponse wraps a student's notifications
type NotificationListResponse struct {
	Notifications []NotificationItem `json:"notifications"`
}
