package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kral14/mobilsayt/internal/dto"
)

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		last   string
		want   string
	}{
		{"empty table starts at one", SaleInvoicePrefix, "", "SQ00000001"},
		{"increments the last number", SaleInvoicePrefix, "SQ00000711", "SQ00000712"},
		{"pads to eight digits", SaleInvoicePrefix, "SQ00000009", "SQ00000010"},
		{"grows past eight digits", SaleInvoicePrefix, "SQ99999999", "SQ100000000"},
		{"legacy free-form number restarts", SaleInvoicePrefix, "DRAFT-17", "SQ00000001"},
		{"purchase sequence is independent", PurchaseInvoicePrefix, "AQ00000041", "AQ00000042"},
		{"sale number seen by purchase prefix restarts", PurchaseInvoicePrefix, "SQ00000711", "AQ00000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInvoiceNumber(tt.prefix, tt.last))
		})
	}
}

func TestSumItemTotalsExact(t *testing.T) {
	items := []dto.CreateOrderItem{
		{TotalPrice: decimal.RequireFromString("10.50")},
		{TotalPrice: decimal.RequireFromString("5.25")},
	}
	assert.Equal(t, "15.75", SumItemTotals(items).String())
}

func TestSumItemTotalsEmpty(t *testing.T) {
	assert.True(t, SumItemTotals(nil).IsZero())
}
