package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ssgi/placementms/internal/app/models"
	"github.com/ssgi/placementms/internal/pkg/apperrors"
)

// fakeStudentStore is a func-field StudentStore fake. Unset fields
// behave like an empty collection.
type fakeStudentStore struct {
	findByStudentIDFn   func(ctx context.Context, studentID string) (*models.Student, error)
	findByEmailFn       func(ctx context.Context, email string) (*models.Student, error)
	insertFn            func(ctx context.Context, student *models.Student) error
	listFn              func(ctx context.Context) ([]*models.Student, error)
	listStudentIDsFn    func(ctx context.Context) ([]string, error)
	updateByStudentIDFn func(ctx context.Context, studentID string, patch bson.M) (int64, int64, error)
	setVerifiedFn       func(ctx context.Context, studentID string) (int64, int64, error)
}

func (f *fakeStudentStore) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if f.findByStudentIDFn != nil {
		return f.findByStudentIDFn(ctx, studentID)
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Insert(ctx context.Context, student *models.Student) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, student)
	}
	return nil
}

func (f *fakeStudentStore) List(ctx context.Context) ([]*models.Student, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeStudentStore) ListStudentIDs(ctx context.Context) ([]string, error) {
	if f.listStudentIDsFn != nil {
		return f.listStudentIDsFn(ctx)
	}
	return nil, nil
}

func (f *fakeStudentStore) UpdateByStudentID(ctx context.Context, studentID string, patch bson.M) (int64, int64, error) {
	if f.updateByStudentIDFn != nil {
		return f.updateByStudentIDFn(ctx, studentID, patch)
	}
	return 1, 1, nil
}

func (f *fakeStudentStore) SetVerified(ctx context.Context, studentID string) (int64, int64, error) {
	if f.setVerifiedFn != nil {
		return f.setVerifiedFn(ctx, studentID)
	}
	return 1, 1, nil
}

// fakeAdminStore is a func-field AdminStore fake
type fakeAdminStore struct {
	findByEmailFn func(ctx context.Context, email string) (*models.Admin, error)
	findByIDFn    func(ctx context.Context, id string) (*models.Admin, error)
	insertFn      func(ctx context.Context, admin *models.Admin) (string, error)
}

func (f *fakeAdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) Insert(ctx context.Context, admin *models.Admin) (string, error) {
	if f.insertFn != nil {
		return f.insertFn(ctx, admin)
	}
	return "656f1c2b8f1b2c3d4e5f6a7b", nil
}

// fakeCompanyStore is a func-field CompanyStore fake
type fakeCompanyStore struct {
	insertFn  func(ctx context.Context, company *models.Company) (string, error)
	listFn    func(ctx context.Context) ([]*models.Company, error)
	replaceFn func(ctx context.Context, id string, company *models.Company) (int64, error)
	setLogoFn func(ctx context.Context, id, logoURL string) (int64, error)
	deleteFn  func(ctx context.Context, id string) (int64, error)
}

func (f *fakeCompanyStore) Insert(ctx context.Context, company *models.Company) (string, error) {
	if f.insertFn != nil {
		return f.insertFn(ctx, company)
	}
	return "656f1c2b8f1b2c3d4e5f6a7c", nil
}

func (f *fakeCompanyStore) List(ctx context.Context) ([]*models.Company, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeCompanyStore) Replace(ctx context.Context, id string, company *models.Company) (int64, error) {
	if f.replaceFn != nil {
		return f.replaceFn(ctx, id, company)
	}
	return 1, nil
}

func (f *fakeCompanyStore) SetLogo(ctx context.Context, id, logoURL string) (int64, error) {
	if f.setLogoFn != nil {
		return f.setLogoFn(ctx, id, logoURL)
	}
	return 1, nil
}

func (f *fakeCompanyStore) Delete(ctx context.Context, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 1, nil
}

// fakeNotificationStore records inserted notifications in memory
type fakeNotificationStore struct {
	inserted  []*models.Notification
	insertErr error
	listFn    func(ctx context.Context, studentID string) ([]*models.Notification, error)
}

func (f *fakeNotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, n)
	return nil
}

func (f *fakeNotificationStore) InsertMany(ctx context.Context, batch []*models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, batch...)
	return nil
}

func (f *fakeNotificationStore) ListForStudent(ctx context.Context, studentID string) ([]*models.Notification, error) {
	if f.listFn != nil {
		return f.listFn(ctx, studentID)
	}
	return nil, nil
}

// fakeUploader records uploads in call order and returns deterministic
// URLs, optionally failing from a given call index onward.
type fakeUploader struct {
	calls   []string // folder per call, in order
	failAt  int      // 1-based call number that fails; 0 means never
	baseURL string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	f.calls = append(f.calls, folder)
	if f.failAt > 0 && len(f.calls) >= f.failAt {
		return "", fmt.Errorf("simulated upload outage")
	}
	base := f.baseURL
	if base == "" {
		base = "https://res.cloudinary.example/"
	}
	return fmt.Sprintf("%s%s/file-%d", base, folder, len(f.calls)), nil
}
