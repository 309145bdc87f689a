package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "titlehub/internal/errors"
	"titlehub/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) FindDeleted(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) SearchByName(ctx context.Context, name string) ([]model.Contact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestContactService_Create(t *testing.T) {
	input := ContactInput{
		Name:  "Acme Title",
		Phone: "555-0101",
		Email: "office@acme.com",
		Type:  "Lender",
	}

	t.Run("sets owner and default status", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		svc := NewContactService(mockRepo)
		contact, err := svc.Create(context.Background(), input, 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), contact.UserID)
		assert.Equal(t, model.ContactActive, contact.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(gorm.ErrDuplicatedKey)

		svc := NewContactService(mockRepo)
		contact, err := svc.Create(context.Background(), input, 7)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Nil(t, contact)
		mockRepo.AssertExpectations(t)
	})
}

func TestContactService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewContactService(mockRepo)
	contact, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, contact)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Delete_Idempotence(t *testing.T) {
	// First delete matches the live row; the second matches nothing and must
	// be reported as not found, never as a second success.
	mockRepo := new(MockContactRepository)
	mockRepo.On("SoftDelete", mock.Anything, uint(3)).Return(int64(1), nil).Once()
	mockRepo.On("SoftDelete", mock.Anything, uint(3)).Return(int64(0), nil).Once()

	svc := NewContactService(mockRepo)

	assert.NoError(t, svc.Delete(context.Background(), 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Update(t *testing.T) {
	t.Run("soft-deleted contact is not found", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewContactService(mockRepo)
		contact, err := svc.Update(context.Background(), 3, ContactInput{Name: "New Name"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, contact)
		mockRepo.AssertExpectations(t)
	})

	t.Run("applies new field values", func(t *testing.T) {
		existing := &model.Contact{ID: 3, Name: "Old", Email: "old@x.com", Status: model.ContactActive, UserID: 7}

		mockRepo := new(MockContactRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		svc := NewContactService(mockRepo)
		contact, err := svc.Update(context.Background(), 3, ContactInput{
			Name:  "New",
			Phone: "555-0102",
			Email: "new@x.com",
			Type:  "Buyer",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New", contact.Name)
		assert.Equal(t, "new@x.com", contact.Email)
		assert.Equal(t, uint(7), contact.UserID, "ownership must survive updates")
		mockRepo.AssertExpectations(t)
	})
}
