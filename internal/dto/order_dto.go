package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kral14/mobilsayt/internal/model"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrderFilter is bound from the query string of GET /api/orders.
type OrderFilter struct {
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=500"`
	Search string `form:"search"`
	SortBy string `form:"sort_by"` // allow-listed in the repository
	Order  string `form:"order"`   // asc | desc
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Pagination PaginationMeta  `json:"pagination"`
}

// ─── Responses ──────────────────────────────────────────────────────────────

// CustomerSnapshot carries the denormalized customer columns joined onto an
// invoice row. Read-only; never persisted with the invoice.
type CustomerSnapshot struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// OrderResponse is a sale invoice with its optional joined customer snapshot
// and, for single-invoice fetches, the item list.
type OrderResponse struct {
	model.SaleInvoice
	Customers *CustomerSnapshot   `json:"customers,omitempty"`
	Items     []OrderItemResponse `json:"sale_invoice_items,omitempty"`
}

// OrderItemResponse is a line item enriched with joined product columns.
type OrderItemResponse struct {
	model.SaleInvoiceItem
	ProductName    *string `json:"product_name,omitempty"`
	ProductCode    *string `json:"product_code,omitempty"`
	ProductBarcode *string `json:"product_barcode,omitempty"`
	ProductUnit    *string `json:"product_unit,omitempty"`
}

// ─── Requests ───────────────────────────────────────────────────────────────

type CreateOrderItem struct {
	ProductID      int              `json:"product_id"      validate:"required"`
	Quantity       decimal.Decimal  `json:"quantity"        validate:"required"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	DiscountAuto   *decimal.Decimal `json:"discount_auto"`
	DiscountManual *decimal.Decimal `json:"discount_manual"`
	VatRate        *decimal.Decimal `json:"vat_rate"`
}

// CreateOrderRequest may carry an empty item list — the desktop client saves
// draft invoices without lines.
type CreateOrderRequest struct {
	CustomerID  *int              `json:"customer_id"`
	InvoiceDate *time.Time        `json:"invoice_date"`
	PaymentDate *time.Time        `json:"payment_date"`
	Notes       *string           `json:"notes"`
	Items       []CreateOrderItem `json:"items" validate:"dive"`
}

// UpdateOrderRequest uses three-way optionals: absent fields stay untouched,
// a present item list (even empty) replaces the whole item set.
type UpdateOrderRequest struct {
	CustomerID  Optional[int]               `json:"customer_id"`
	InvoiceDate Optional[time.Time]         `json:"invoice_date"`
	PaymentDate Optional[time.Time]         `json:"payment_date"`
	Notes       Optional[string]            `json:"notes"`
	Items       Optional[[]CreateOrderItem] `json:"items"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ─── Purchase invoices ──────────────────────────────────────────────────────

type PurchaseInvoiceResponse struct {
	model.PurchaseInvoice
	Items []PurchaseItemResponse `json:"purchase_invoice_items,omitempty"`
}

type PurchaseItemResponse struct {
	model.PurchaseInvoiceItem
	ProductName    *string `json:"product_name,omitempty"`
	ProductCode    *string `json:"product_code,omitempty"`
	ProductBarcode *string `json:"product_barcode,omitempty"`
	ProductUnit    *string `json:"product_unit,omitempty"`
}

type CreatePurchaseInvoiceRequest struct {
	CustomerID  *int              `json:"customer_id"`
	InvoiceDate *time.Time        `json:"invoice_date"`
	PaymentDate *time.Time        `json:"payment_date"`
	Notes       *string           `json:"notes"`
	IsActive    *bool             `json:"is_active"`
	Items       []CreateOrderItem `json:"items" validate:"dive"`
}
