package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactType is a taxonomy entry for classifying contacts. The slug is
// derived from the display name at creation time.
type ContactType struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ContactType string         `json:"contact_type" gorm:"size:100;not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName keeps the singular table name used by the existing schema.
func (ContactType) TableName() string {
	return "contact_type"
}
