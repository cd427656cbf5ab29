package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountDocumentFilter struct {
	Type       string `form:"type"`
	EntityID   *int   `form:"entity_id"`
	ActiveOnly bool   `form:"active_only"`
}

type DiscountDocumentItemRequest struct {
	ProductID       *int            `json:"product_id"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"required"`
	Description     *string         `json:"description"`
}

type CreateDiscountDocumentRequest struct {
	DocumentNumber string                        `json:"document_number" validate:"required"`
	DocumentDate   time.Time                     `json:"document_date"   validate:"required"`
	StartDate      *time.Time                    `json:"start_date"`
	EndDate        *time.Time                    `json:"end_date"`
	Type           string                        `json:"type" validate:"required"`
	EntityID       *int                          `json:"entity_id"`
	Notes          *string                       `json:"notes"`
	Items          []DiscountDocumentItemRequest `json:"items" validate:"dive"`
}

// UpdateDiscountDocumentRequest replaces the item set wholesale, mirroring
// the invoice update semantics.
type UpdateDiscountDocumentRequest struct {
	DocumentNumber string                        `json:"document_number" validate:"required"`
	DocumentDate   time.Time                     `json:"document_date"   validate:"required"`
	StartDate      *time.Time                    `json:"start_date"`
	EndDate        *time.Time                    `json:"end_date"`
	Type           string                        `json:"type" validate:"required"`
	EntityID       *int                          `json:"entity_id"`
	IsActive       *bool                         `json:"is_active"`
	Notes          *string                       `json:"notes"`
	Items          []DiscountDocumentItemRequest `json:"items" validate:"dive"`
}
