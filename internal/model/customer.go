package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer covers both buyers and suppliers; Type distinguishes them
// (BUYER | SUPPLIER).
type Customer struct {
	ID                int              `gorm:"primaryKey" json:"id"`
	Name              string           `gorm:"not null;index" json:"name"`
	Phone             *string          `json:"phone"`
	Email             *string          `json:"email"`
	Address           *string          `json:"address"`
	CreatedAt         *time.Time       `json:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at"`
	Balance           *decimal.Decimal `gorm:"type:decimal(12,2)" json:"balance"`
	FolderID          *int             `json:"folder_id"`
	Code              *string          `json:"code"`
	IsActive          *bool            `gorm:"default:true" json:"is_active"`
	Type              *string          `gorm:"column:type" json:"type"`
	PermanentDiscount *decimal.Decimal `gorm:"type:decimal(5,2)" json:"permanent_discount"`
}

type CustomerFolder struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	ParentID  *int       `json:"parent_id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
