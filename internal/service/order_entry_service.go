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

// OrderEntryService handles the full intake records behind orders. Entries
// have no audit requirement and use permanent deletion.
type OrderEntryService interface {
	Create(ctx context.Context, entry *model.OrderEntry) (*model.OrderEntry, error)
	List(ctx context.Context) ([]model.OrderEntry, error)
	Get(ctx context.Context, id uint) (*model.OrderEntry, error)
	Update(ctx context.Context, id uint, entry *model.OrderEntry) (*model.OrderEntry, error)
	Delete(ctx context.Context, id uint) error
}

type orderEntryService struct {
	entryRepo repository.OrderEntryRepository
}

// NewOrderEntryService creates a new order entry service.
func NewOrderEntryService(entryRepo repository.OrderEntryRepository) OrderEntryService {
	return &orderEntryService{entryRepo: entryRepo}
}

func (s *orderEntryService) Create(ctx context.Context, entry *model.OrderEntry) (*model.OrderEntry, error) {
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: order number already exists", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("create order entry: %w", err)
	}
	return entry, nil
}

func (s *orderEntryService) List(ctx context.Context) ([]model.OrderEntry, error) {
	return s.entryRepo.FindAll(ctx)
}

func (s *orderEntryService) Get(ctx context.Context, id uint) (*model.OrderEntry, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find order entry: %w", err)
	}
	return entry, nil
}

// Update replaces the stored entry with the incoming one (PUT semantics),
// keeping the immutable id and creation timestamp.
func (s *orderEntryService) Update(ctx context.Context, id uint, entry *model.OrderEntry) (*model.OrderEntry, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: order number already exists", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("update order entry: %w", err)
	}
	return entry, nil
}

func (s *orderEntryService) Delete(ctx context.Context, id uint) error {
	affected, err := s.entryRepo.HardDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order entry: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
