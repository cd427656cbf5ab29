package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry. Most columns are nullable because the
// desktop client creates drafts with only a name filled in.
type Product struct {
	ID             int              `gorm:"primaryKey" json:"id"`
	Name           string           `gorm:"not null;index" json:"name"`
	Barcode        *string          `json:"barcode"`
	Description    *string          `json:"description"`
	Unit           *string          `json:"unit"`
	PurchasePrice  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"purchase_price"`
	SalePrice      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	CreatedAt      *time.Time       `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at"`
	Code           *string          `json:"code"`
	Article        *string          `json:"article"`
	CategoryID     *int             `gorm:"index" json:"category_id"`
	ProductType    *string          `gorm:"column:type" json:"type"`
	Brand          *string          `json:"brand"`
	Model          *string          `json:"model"`
	Color          *string          `json:"color"`
	Size           *string          `json:"size"`
	Weight         *decimal.Decimal `gorm:"type:decimal(10,3)" json:"weight"`
	Country        *string          `json:"country"`
	Manufacturer   *string          `json:"manufacturer"`
	WarrantyPeriod *int             `json:"warranty_period"`
	MinStock       *decimal.Decimal `gorm:"type:decimal(12,3)" json:"min_stock"`
	MaxStock       *decimal.Decimal `gorm:"type:decimal(12,3)" json:"max_stock"`
	TaxRate        *decimal.Decimal `gorm:"type:decimal(5,2)" json:"tax_rate"`
	IsActive       *bool            `gorm:"default:true" json:"is_active"`
	ProductionDate *time.Time       `json:"production_date"`
	ExpiryDate     *time.Time       `json:"expiry_date"`
}

// Warehouse is a per-product stock row. The table name is historical —
// the frontend expects the singular form.
type Warehouse struct {
	ID        int              `gorm:"primaryKey" json:"id"`
	ProductID *int             `gorm:"index" json:"product_id"`
	Quantity  *decimal.Decimal `gorm:"type:decimal(12,3)" json:"quantity"`
	UpdatedAt *time.Time       `json:"updated_at"`
}

func (Warehouse) TableName() string { return "warehouse" }

type Category struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	ParentID  *int       `json:"parent_id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
