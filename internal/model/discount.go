package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDiscount is a dated percentage discount attached directly to a
// product. Discount documents (below) populate these rows.
type ProductDiscount struct {
	ID         int             `gorm:"primaryKey" json:"id"`
	ProductID  int             `gorm:"index;not null" json:"product_id"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    time.Time       `gorm:"not null" json:"end_date"`
	IsActive   *bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  *time.Time      `json:"created_at"`
}

// DiscountDocument groups discount lines under one numbered document,
// scoped by Type (product | supplier) and optionally an entity.
type DiscountDocument struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	DocumentNumber string     `gorm:"uniqueIndex;not null" json:"document_number"`
	DocumentDate   time.Time  `gorm:"not null" json:"document_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Type           string     `gorm:"column:type;not null" json:"type"`
	EntityID       *int       `json:"entity_id"`
	IsActive       *bool      `gorm:"default:true" json:"is_active"`
	Notes          *string    `json:"notes"`
	CreatedAt      *time.Time `json:"created_at"`

	Items []DiscountDocumentItem `gorm:"foreignKey:DocumentID" json:"items"`
}

type DiscountDocumentItem struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	DocumentID      int             `gorm:"index;not null" json:"document_id"`
	ProductID       *int            `json:"product_id"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_percent"`
	Description     *string         `json:"description"`
}
