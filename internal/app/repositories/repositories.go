package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	CollectionStudents      = "students"
	CollectionAdmins        = "admins"
	CollectionCompanies     = "companies"
	CollectionNotifications = "notifications"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	AdminRepository        *AdminRepository
	CompanyRepository      *CompanyRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories against one database handle
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		AdminRepository:        NewAdminRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
