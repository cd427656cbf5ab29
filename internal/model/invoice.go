package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleInvoice is the sale document header. TotalAmount always equals the
// sum of the current items' total_price; it is recomputed on every
// create/replace, never maintained incrementally.
type SaleInvoice struct {
	ID            int              `gorm:"primaryKey" json:"id"`
	InvoiceNumber string           `gorm:"not null" json:"invoice_number"`
	CustomerID    *int             `gorm:"index" json:"customer_id"`
	TotalAmount   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	Notes         *string          `json:"notes"`
	CreatedAt     *time.Time       `json:"created_at"`
	PaymentDate   *time.Time       `json:"payment_date"`
	IsActive      *bool            `gorm:"default:false" json:"is_active"`
}

// SaleInvoiceItem is owned exclusively by its invoice: updates replace the
// whole item set, deletes remove items before the header.
type SaleInvoiceItem struct {
	ID             int              `gorm:"primaryKey" json:"id"`
	InvoiceID      *int             `gorm:"index" json:"invoice_id"`
	ProductID      *int             `json:"product_id"`
	Quantity       decimal.Decimal  `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice      decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total_price"`
	DiscountAuto   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_auto"`
	DiscountManual *decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_manual"`
}

type PurchaseInvoice struct {
	ID            int              `gorm:"primaryKey" json:"id"`
	InvoiceNumber string           `gorm:"not null" json:"invoice_number"`
	CustomerID    *int             `gorm:"index" json:"customer_id"`
	TotalAmount   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	Notes         *string          `json:"notes"`
	CreatedAt     *time.Time       `json:"created_at"`
	PaymentDate   *time.Time       `json:"payment_date"`
	IsActive      *bool            `gorm:"default:false" json:"is_active"`
}

type PurchaseInvoiceItem struct {
	ID             int              `gorm:"primaryKey" json:"id"`
	InvoiceID      *int             `gorm:"index" json:"invoice_id"`
	ProductID      *int             `json:"product_id"`
	Quantity       decimal.Decimal  `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice      decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total_price"`
	DiscountAuto   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_auto"`
	DiscountManual *decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_manual"`
}
