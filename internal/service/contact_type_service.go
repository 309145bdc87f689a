package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	apperrors "titlehub/internal/errors"
	"titlehub/internal/model"
	"titlehub/internal/repository"
)

// ContactTypeService handles the contact-type taxonomy.
type ContactTypeService interface {
	Create(ctx context.Context, name string, userID uint) (*model.ContactType, error)
	List(ctx context.Context) ([]model.ContactType, error)
	Get(ctx context.Context, id uint) (*model.ContactType, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
}

type contactTypeService struct {
	typeRepo repository.ContactTypeRepository
}

// NewContactTypeService creates a new contact type service.
func NewContactTypeService(typeRepo repository.ContactTypeRepository) ContactTypeService {
	return &contactTypeService{typeRepo: typeRepo}
}

func (s *contactTypeService) Create(ctx context.Context, name string, userID uint) (*model.ContactType, error) {
	ct := &model.ContactType{
		ContactType: name,
		Slug:        slug.Make(name),
		UserID:      userID,
	}

	if err := s.typeRepo.Create(ctx, ct); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: contact type already exists", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("create contact type: %w", err)
	}
	return ct, nil
}

func (s *contactTypeService) List(ctx context.Context) ([]model.ContactType, error) {
	return s.typeRepo.FindAll(ctx)
}

func (s *contactTypeService) Get(ctx context.Context, id uint) (*model.ContactType, error) {
	ct, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find contact type: %w", err)
	}
	return ct, nil
}

func (s *contactTypeService) Delete(ctx context.Context, id uint) error {
	affected, err := s.typeRepo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact type: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Restore reactivates a soft-deleted contact type. Restoring a type that is
// not currently deleted matches zero rows so an active id is never reported
// as a restore.
func (s *contactTypeService) Restore(ctx context.Context, id uint) error {
	affected, err := s.typeRepo.Restore(ctx, id)
	if err != nil {
		return fmt.Errorf("restore contact type: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
