package repository

import (
	"context"

	"gorm.io/gorm"

	"titlehub/internal/model"
)

// OrderEntryRepository defines order entry persistence operations. Entries are
// the one table with permanent deletion.
type OrderEntryRepository interface {
	Create(ctx context.Context, entry *model.OrderEntry) error
	FindAll(ctx context.Context) ([]model.OrderEntry, error)
	FindByID(ctx context.Context, id uint) (*model.OrderEntry, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*model.OrderEntry, error)
	Save(ctx context.Context, entry *model.OrderEntry) error
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type orderEntryRepository struct {
	db *gorm.DB
}

// NewOrderEntryRepository creates a new order entry repository.
func NewOrderEntryRepository(db *gorm.DB) OrderEntryRepository {
	return &orderEntryRepository{db: db}
}

func (r *orderEntryRepository) Create(ctx context.Context, entry *model.OrderEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *orderEntryRepository) FindAll(ctx context.Context) ([]model.OrderEntry, error) {
	var entries []model.OrderEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *orderEntryRepository) FindByID(ctx context.Context, id uint) (*model.OrderEntry, error) {
	var entry model.OrderEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *orderEntryRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*model.OrderEntry, error) {
	var entry model.OrderEntry
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *orderEntryRepository) Save(ctx context.Context, entry *model.OrderEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *orderEntryRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.OrderEntry{}, id)
	return res.RowsAffected, res.Error
}
