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

// ContactInput carries the mutable contact fields from the transport layer.
type ContactInput struct {
	Name    string
	Phone   string
	Email   string
	Type    string
	Address string
	City    string
	County  string
	Status  model.ContactStatus
}

// ContactService handles contact management.
type ContactService interface {
	Create(ctx context.Context, in ContactInput, ownerID uint) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	ListDeleted(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id uint) (*model.Contact, error)
	Search(ctx context.Context, name string) ([]model.Contact, error)
	Update(ctx context.Context, id uint, in ContactInput) (*model.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Create(ctx context.Context, in ContactInput, ownerID uint) (*model.Contact, error) {
	status := in.Status
	if status == "" {
		status = model.ContactActive
	}

	contact := &model.Contact{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Type:    in.Type,
		Address: in.Address,
		City:    in.City,
		County:  in.County,
		Status:  status,
		UserID:  ownerID,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: contact email already exists", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contactRepo.FindAll(ctx)
}

func (s *contactService) ListDeleted(ctx context.Context) ([]model.Contact, error) {
	return s.contactRepo.FindDeleted(ctx)
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Search(ctx context.Context, name string) ([]model.Contact, error) {
	return s.contactRepo.SearchByName(ctx, name)
}

// Update applies the new field values to a live contact. A soft-deleted id is
// filtered out by the read and reported as not found.
func (s *contactService) Update(ctx context.Context, id uint, in ContactInput) (*model.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	contact.Name = in.Name
	contact.Phone = in.Phone
	contact.Email = in.Email
	contact.Type = in.Type
	contact.Address = in.Address
	contact.City = in.City
	contact.County = in.County
	if in.Status != "" {
		contact.Status = in.Status
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: contact email already exists", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete soft-deletes by id. Deleting an already-deleted contact matches zero
// rows and is reported as not found.
func (s *contactService) Delete(ctx context.Context, id uint) error {
	affected, err := s.contactRepo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
