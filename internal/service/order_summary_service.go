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

// OrderStatusSummary is the derived workflow standing of one order entry.
type OrderStatusSummary struct {
	OrderNumber    string `json:"order_number"`
	Status         string `json:"status"`
	ActiveWorkflow string `json:"active_workflow,omitempty"`
	AssignedTo     string `json:"assigned_to,omitempty"`
}

// OrderSummaryService exposes read-only projections over order entries.
type OrderSummaryService interface {
	List(ctx context.Context) ([]model.OrderEntry, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.OrderEntry, error)
	GetStatus(ctx context.Context, orderNumber string) (*OrderStatusSummary, error)
}

type orderSummaryService struct {
	entryRepo repository.OrderEntryRepository
}

// NewOrderSummaryService creates a new order summary service.
func NewOrderSummaryService(entryRepo repository.OrderEntryRepository) OrderSummaryService {
	return &orderSummaryService{entryRepo: entryRepo}
}

func (s *orderSummaryService) List(ctx context.Context) ([]model.OrderEntry, error) {
	return s.entryRepo.FindAll(ctx)
}

func (s *orderSummaryService) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.OrderEntry, error) {
	entry, err := s.entryRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find order summary: %w", err)
	}
	return entry, nil
}

// GetStatus derives the order's standing from its lifecycle dates: closed once
// a closed date is recorded, delivered once delivery happened, open otherwise.
func (s *orderSummaryService) GetStatus(ctx context.Context, orderNumber string) (*OrderStatusSummary, error) {
	entry, err := s.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	status := "open"
	switch {
	case entry.ClosedDate != nil:
		status = "closed"
	case entry.DeliveryDate != nil:
		status = "delivered"
	}

	return &OrderStatusSummary{
		OrderNumber:    entry.OrderNumber,
		Status:         status,
		ActiveWorkflow: entry.ActiveWorkflow,
		AssignedTo:     entry.AssignedTo,
	}, nil
}
