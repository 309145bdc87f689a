package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "titlehub/internal/errors"
	"titlehub/internal/model"
	"titlehub/internal/repository"
)

// OrderInput carries the mutable order fields from the transport layer.
type OrderInput struct {
	Customer        string
	State           string
	County          string
	ProductType     string
	TransactionType string
	DataSource      string
	WorkflowGroup   string
	Status          model.OrderStatus
}

// OrderService handles property order tracking.
type OrderService interface {
	Create(ctx context.Context, in OrderInput) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListDeleted(ctx context.Context) ([]model.Order, error)
	ListCompleted(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	Update(ctx context.Context, id uint, in OrderInput) (*model.Order, error)
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	status := in.Status
	if status == "" {
		status = model.OrderPending
	}

	order := &model.Order{
		Customer:        in.Customer,
		State:           in.State,
		County:          in.County,
		ProductType:     in.ProductType,
		TransactionType: in.TransactionType,
		DataSource:      in.DataSource,
		WorkflowGroup:   in.WorkflowGroup,
		Status:          status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderService) ListDeleted(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindDeleted(ctx)
}

func (s *orderService) ListCompleted(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindCompleted(ctx)
}

func (s *orderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id uint, in OrderInput) (*model.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Customer = in.Customer
	order.State = in.State
	order.County = in.County
	order.ProductType = in.ProductType
	order.TransactionType = in.TransactionType
	order.DataSource = in.DataSource
	order.WorkflowGroup = in.WorkflowGroup
	if in.Status != "" {
		order.Status = in.Status
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	affected, err := s.orderRepo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
