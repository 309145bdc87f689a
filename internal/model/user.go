package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of categories governing which operations a user may
// invoke. Parsed once at the boundary; downstream code compares Role values,
// never raw strings from the request.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleModerator:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// UserStatus is the account standing of a user.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBanned   UserStatus = "banned"
)

// User represents an authenticated user in the system. DeletedAt exists in the
// schema but no route deletes users; the column is carried for parity with the
// rest of the tables.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Phone        string         `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	Role         Role           `json:"role" gorm:"size:20;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Status       UserStatus     `json:"status" gorm:"size:20;default:'active'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
