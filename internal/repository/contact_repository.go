package repository

import (
	"context"

	"gorm.io/gorm"

	"titlehub/internal/model"
)

// ContactRepository defines contact persistence operations. Reads are scoped
// to non-deleted rows by GORM's soft-delete handling; FindDeleted is the
// explicit audit path.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindAll(ctx context.Context) ([]model.Contact, error)
	FindDeleted(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	SearchByName(ctx context.Context, name string) ([]model.Contact, error)
	Save(ctx context.Context, contact *model.Contact) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindDeleted(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) SearchByName(ctx context.Context, name string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) Save(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// SoftDelete stamps deleted_at on a live row and reports how many rows
// matched. An already-deleted id matches zero rows.
func (r *contactRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Contact{}, id)
	return res.RowsAffected, res.Error
}
