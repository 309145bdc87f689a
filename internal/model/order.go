package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus tracks an order through its workflow.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// Order is a property title order.
type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Customer        string         `json:"customer" gorm:"size:255;not null"`
	State           string         `json:"state" gorm:"size:50;not null"`
	County          string         `json:"county" gorm:"size:50;not null"`
	ProductType     string         `json:"product_type" gorm:"size:100;not null"`
	TransactionType string         `json:"transaction_type" gorm:"size:100;not null"`
	DataSource      string         `json:"data_source" gorm:"size:100"`
	WorkflowGroup   string         `json:"workflow_group" gorm:"size:100;not null"`
	Status          OrderStatus    `json:"status" gorm:"size:50;default:'pending';index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
