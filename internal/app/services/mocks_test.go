package services

import (
	"context"
	"time"

	"github.com/edupoint/schooladmin/internal/app/models"
)

// MockStudentStore is a configurable StudentStore for tests. Each call is
// counted so tests can assert an operation never reached persistence.
type MockStudentStore struct {
	FindAllFunc     func(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error)
	FindDetailFunc  func(ctx context.Context, id int64) (*models.StudentDetail, error)
	AddOrUpdateFunc func(ctx context.Context, payload *models.StudentUpsert) (*models.UpsertResult, error)
	SetStatusFunc   func(ctx context.Context, userID, reviewerID int64, status bool, reviewedAt time.Time) (int64, error)
	DeleteFunc      func(ctx context.Context, id int64) (int64, error)

	FindAllCalls     int
	FindDetailCalls  int
	AddOrUpdateCalls int
	SetStatusCalls   int
	DeleteCalls      int
}

func (m *MockStudentStore) FindAll(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error) {
	m.FindAllCalls++
	return m.FindAllFunc(ctx, filter)
}

func (m *MockStudentStore) FindDetail(ctx context.Context, id int64) (*models.StudentDetail, error) {
	m.FindDetailCalls++
	return m.FindDetailFunc(ctx, id)
}

func (m *MockStudentStore) AddOrUpdate(ctx context.Context, payload *models.StudentUpsert) (*models.UpsertResult, error) {
	m.AddOrUpdateCalls++
	return m.AddOrUpdateFunc(ctx, payload)
}

func (m *MockStudentStore) SetStatus(ctx context.Context, userID, reviewerID int64, status bool, reviewedAt time.Time) (int64, error) {
	m.SetStatusCalls++
	return m.SetStatusFunc(ctx, userID, reviewerID, status, reviewedAt)
}

func (m *MockStudentStore) Delete(ctx context.Context, id int64) (int64, error) {
	m.DeleteCalls++
	return m.DeleteFunc(ctx, id)
}

// MockUserFinder is a configurable UserFinder for tests.
type MockUserFinder struct {
	FindByIDFunc  func(ctx context.Context, id int64) (*models.User, error)
	FindByIDCalls int
}

func (m *MockUserFinder) FindByID(ctx context.Context, id int64) (*models.User, error) {
	m.FindByIDCalls++
	return m.FindByIDFunc(ctx, id)
}

// MockEmailService records verification email sends.
type MockEmailService struct {
	SendVerificationEmailFunc  func(userID int64, toEmail string) error
	SendVerificationEmailCalls int
}

func (m *MockEmailService) SendVerificationEmail(userID int64, toEmail string) error {
	m.SendVerificationEmailCalls++
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(userID, toEmail)
	}
	return nil
}

// MockClassStore is a configurable ClassStore for tests.
type MockClassStore struct {
	GetAllFunc  func(ctx context.Context) ([]*models.Class, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Class, error)
	CreateFunc  func(ctx context.Context, class *models.Class) (int64, error)
	UpdateFunc  func(ctx context.Context, class *models.Class) (int64, error)
	DeleteFunc  func(ctx context.Context, id int64) (int64, error)

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func (m *MockClassStore) GetAll(ctx context.Context) ([]*models.Class, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockClassStore) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockClassStore) Create(ctx context.Context, class *models.Class) (int64, error) {
	m.CreateCalls++
	return m.CreateFunc(ctx, class)
}

func (m *MockClassStore) Update(ctx context.Context, class *models.Class) (int64, error) {
	m.UpdateCalls++
	return m.UpdateFunc(ctx, class)
}

func (m *MockClassStore) Delete(ctx context.Context, id int64) (int64, error) {
	m.DeleteCalls++
	return m.DeleteFunc(ctx, id)
}
