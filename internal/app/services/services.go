// Package services holds the business rules: validation ordering,
// credential checks, patch assembly and fan-out. Services depend on
// narrow store interfaces rather than concrete repositories so the
// rules can be exercised against fakes.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ssgi/placementms/internal/app/models"
)

// StudentStore is the student persistence contract consumed by services.
// *repositories.StudentRepository satisfies it.
type StudentStore interface {
	FindByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	ListStudentIDs(ctx context.Context) ([]string, error)
	UpdateByStudentID(ctx context.Context, studentID string, patch bson.M) (matched, modified int64, err error)
	SetVerified(ctx context.Context, studentID string) (matched, modified int64, err error)
}

// AdminStore is the admin persistence contract consumed by services
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) (string, error)
}

// CompanyStore is the company persistence contract consumed by services
type CompanyStore interface {
	Insert(ctx context.Context, company *models.Company) (string, error)
	List(ctx context.Context) ([]*models.Company, error)
	Replace(ctx context.Context, id string, company *models.Company) (int64, error)
	SetLogo(ctx context.Context, id, logoURL string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// NotificationStore is the notification persistence contract consumed
// by services
type NotificationStore interface {
	Insert(ctx context.Context, notification *models.Notification) error
	InsertMany(ctx context.Context, notifications []*models.Notification) error
	ListForStudent(ctx context.Context, studentID string) ([]*models.Notification, error)
}
