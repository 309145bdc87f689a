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

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindDeleted(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindCompleted(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestOrderService_Create_DefaultsToPending(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	svc := NewOrderService(mockRepo)
	order, err := svc.Create(context.Background(), OrderInput{
		Customer:        "Jane Doe",
		State:           "TX",
		County:          "Travis",
		ProductType:     "Full Search",
		TransactionType: "Purchase",
		WorkflowGroup:   "Residential",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Update(t *testing.T) {
	t.Run("updates a live order", func(t *testing.T) {
		existing := &model.Order{ID: 4, Customer: "Jane Doe", Status: model.OrderPending}

		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

		svc := NewOrderService(mockRepo)
		order, err := svc.Update(context.Background(), 4, OrderInput{
			Customer:        "Jane Doe",
			State:           "TX",
			County:          "Travis",
			ProductType:     "Full Search",
			TransactionType: "Refinance",
			WorkflowGroup:   "Residential",
			Status:          model.OrderCompleted,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Refinance", order.TransactionType)
		assert.Equal(t, model.OrderCompleted, order.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("soft-deleted order is not found", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewOrderService(mockRepo)
		order, err := svc.Update(context.Background(), 4, OrderInput{Customer: "Jane Doe"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, order)
		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_Delete_Idempotence(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("SoftDelete", mock.Anything, uint(4)).Return(int64(1), nil).Once()
	mockRepo.On("SoftDelete", mock.Anything, uint(4)).Return(int64(0), nil).Once()

	svc := NewOrderService(mockRepo)

	assert.NoError(t, svc.Delete(context.Background(), 4))
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
