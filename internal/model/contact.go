package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactStatus is the active/inactive standing of a contact.
type ContactStatus string

const (
	ContactActive   ContactStatus = "active"
	ContactInactive ContactStatus = "inactive"
)

// Contact is an address-book entry owned by the user who created it.
type Contact struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null;index"`
	Phone     string         `json:"phone" gorm:"size:20;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Type      string         `json:"type" gorm:"size:50;not null"`
	Address   string         `json:"address" gorm:"type:text"`
	City      string         `json:"city" gorm:"size:50"`
	County    string         `json:"county" gorm:"size:50"`
	Status    ContactStatus  `json:"status" gorm:"size:20;default:'active'"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
