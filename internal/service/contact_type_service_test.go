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

// MockContactTypeRepository is a mock implementation of ContactTypeRepository.
type MockContactTypeRepository struct {
	mock.Mock
}

func (m *MockContactTypeRepository) Create(ctx context.Context, ct *model.ContactType) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockContactTypeRepository) FindAll(ctx context.Context) ([]model.ContactType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactType), args.Error(1)
}

func (m *MockContactTypeRepository) FindByID(ctx context.Context, id uint) (*model.ContactType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactType), args.Error(1)
}

func (m *MockContactTypeRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactTypeRepository) Restore(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestContactTypeService_Create(t *testing.T) {
	t.Run("derives slug from name", func(t *testing.T) {
		mockRepo := new(MockContactTypeRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactType")).Return(nil)

		svc := NewContactTypeService(mockRepo)
		ct, err := svc.Create(context.Background(), "Real Estate Agent", 7)

		assert.NoError(t, err)
		assert.Equal(t, "Real Estate Agent", ct.ContactType)
		assert.Equal(t, "real-estate-agent", ct.Slug)
		assert.Equal(t, uint(7), ct.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		mockRepo := new(MockContactTypeRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactType")).Return(gorm.ErrDuplicatedKey)

		svc := NewContactTypeService(mockRepo)
		ct, err := svc.Create(context.Background(), "Lender", 7)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Nil(t, ct)
		mockRepo.AssertExpectations(t)
	})
}

func TestContactTypeService_DeleteThenRestore(t *testing.T) {
	mockRepo := new(MockContactTypeRepository)
	mockRepo.On("SoftDelete", mock.Anything, uint(5)).Return(int64(1), nil)
	mockRepo.On("Restore", mock.Anything, uint(5)).Return(int64(1), nil)

	svc := NewContactTypeService(mockRepo)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	assert.NoError(t, svc.Restore(context.Background(), 5))
	mockRepo.AssertExpectations(t)
}

func TestContactTypeService_Restore_NotDeleted(t *testing.T) {
	// Restoring an active row matches zero rows; "already active" must not be
	// masked as a successful restore.
	mockRepo := new(MockContactTypeRepository)
	mockRepo.On("Restore", mock.Anything, uint(5)).Return(int64(0), nil)

	svc := NewContactTypeService(mockRepo)
	assert.ErrorIs(t, svc.Restore(context.Background(), 5), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestContactTypeService_Delete_AlreadyDeleted(t *testing.T) {
	mockRepo := new(MockContactTypeRepository)
	mockRepo.On("SoftDelete", mock.Anything, uint(5)).Return(int64(0), nil)

	svc := NewContactTypeService(mockRepo)
	assert.ErrorIs(t, svc.Delete(context.Background(), 5), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
