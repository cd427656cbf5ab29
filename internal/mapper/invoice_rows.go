package mapper

import (
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
)

// InvoiceRow is the scan target for sale invoice queries joined against the
// customers table.
type InvoiceRow struct {
	model.SaleInvoice

	CustomerName    *string `gorm:"column:customer_name"`
	CustomerPhone   *string `gorm:"column:customer_phone"`
	CustomerAddress *string `gorm:"column:customer_address"`
}

// InvoiceItemRow is the scan target for line items joined against products.
type InvoiceItemRow struct {
	model.SaleInvoiceItem

	ProductName    *string `gorm:"column:product_name"`
	ProductCode    *string `gorm:"column:product_code"`
	ProductBarcode *string `gorm:"column:product_barcode"`
	ProductUnit    *string `gorm:"column:product_unit"`
}

// Invoice maps one joined row to a response. The customer snapshot is only
// attached when the join actually matched (name present, as in the source
// schema where customers.name is NOT NULL).
func Invoice(row InvoiceRow) dto.OrderResponse {
	inv := row.SaleInvoice
	inv.InvoiceDate = UTC(inv.InvoiceDate)
	inv.PaymentDate = UTC(inv.PaymentDate)
	inv.CreatedAt = UTC(inv.CreatedAt)

	resp := dto.OrderResponse{SaleInvoice: inv}
	if row.CustomerName != nil {
		resp.Customers = &dto.CustomerSnapshot{
			Name:    row.CustomerName,
			Phone:   row.CustomerPhone,
			Address: row.CustomerAddress,
		}
	}
	return resp
}

func Invoices(rows []InvoiceRow) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, Invoice(row))
	}
	return out
}

func InvoiceItems(rows []InvoiceItemRow) []dto.OrderItemResponse {
	out := make([]dto.OrderItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.OrderItemResponse{
			SaleInvoiceItem: row.SaleInvoiceItem,
			ProductName:     row.ProductName,
			ProductCode:     row.ProductCode,
			ProductBarcode:  row.ProductBarcode,
			ProductUnit:     row.ProductUnit,
		})
	}
	return out
}

// PurchaseItemRow mirrors InvoiceItemRow for purchase invoices.
type PurchaseItemRow struct {
	model.PurchaseInvoiceItem

	ProductName    *string `gorm:"column:product_name"`
	ProductCode    *string `gorm:"column:product_code"`
	ProductBarcode *string `gorm:"column:product_barcode"`
	ProductUnit    *string `gorm:"column:product_unit"`
}

func PurchaseInvoice(inv model.PurchaseInvoice) dto.PurchaseInvoiceResponse {
	inv.InvoiceDate = UTC(inv.InvoiceDate)
	inv.PaymentDate = UTC(inv.PaymentDate)
	inv.CreatedAt = UTC(inv.CreatedAt)
	return dto.PurchaseInvoiceResponse{PurchaseInvoice: inv}
}

func PurchaseItems(rows []PurchaseItemRow) []dto.PurchaseItemResponse {
	out := make([]dto.PurchaseItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PurchaseItemResponse{
			PurchaseInvoiceItem: row.PurchaseInvoiceItem,
			ProductName:         row.ProductName,
			ProductCode:         row.ProductCode,
			ProductBarcode:      row.ProductBarcode,
			ProductUnit:         row.ProductUnit,
		})
	}
	return out
}
