package repository

import (
	"context"

	"gorm.io/gorm"

	"titlehub/internal/model"
)

// ContactTypeRepository defines taxonomy persistence operations.
type ContactTypeRepository interface {
	Create(ctx context.Context, ct *model.ContactType) error
	FindAll(ctx context.Context) ([]model.ContactType, error)
	FindByID(ctx context.Context, id uint) (*model.ContactType, error)
	SoftDelete(ctx context.Context, id uint) (int64, error)
	Restore(ctx context.Context, id uint) (int64, error)
}

type contactTypeRepository struct {
	db *gorm.DB
}

// NewContactTypeRepository creates a new contact type repository.
func NewContactTypeRepository(db *gorm.DB) ContactTypeRepository {
	return &contactTypeRepository{db: db}
}

func (r *contactTypeRepository) Create(ctx context.Context, ct *model.ContactType) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *contactTypeRepository) FindAll(ctx context.Context) ([]model.ContactType, error) {
	var types []model.ContactType
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *contactTypeRepository) FindByID(ctx context.Context, id uint) (*model.ContactType, error) {
	var ct model.ContactType
	if err := r.db.WithContext(ctx).First(&ct, id).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *contactTypeRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ContactType{}, id)
	return res.RowsAffected, res.Error
}

// Restore clears deleted_at, but only on rows that are currently deleted so an
// active row is never reported as restored.
func (r *contactTypeRepository) Restore(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&model.ContactType{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	return res.RowsAffected, res.Error
}
