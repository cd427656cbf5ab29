package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kral14/mobilsayt/internal/dto"
)

const (
	// SaleInvoicePrefix numbers sale documents: SQ00000001, SQ00000002, ...
	SaleInvoicePrefix = "SQ"
	// PurchaseInvoicePrefix numbers purchase documents the same way with AQ.
	PurchaseInvoicePrefix = "AQ"
)

// NextInvoiceNumber derives the next sequential document number from the
// most recently inserted one. An empty or unparseable last number restarts
// the sequence at 1 — the table may be freshly migrated or hold legacy
// free-form numbers.
//
// Callers must hold the per-prefix sequence lock for the duration of the
// read-generate-insert span, otherwise two transactions can derive the
// same number.
func NextInvoiceNumber(prefix, last string) string {
	next := int64(1)
	if last != "" {
		if n, err := strconv.ParseInt(strings.TrimPrefix(last, prefix), 10, 64); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%08d", prefix, next)
}

// SumItemTotals adds up the client-provided line totals with exact decimal
// arithmetic. The stored header total is always this sum, never a float.
func SumItemTotals(items []dto.CreateOrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return total
}
