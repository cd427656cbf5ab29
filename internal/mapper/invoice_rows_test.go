package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kral14/mobilsayt/internal/model"
)

func TestInvoiceAttachesCustomerSnapshotWhenJoined(t *testing.T) {
	row := InvoiceRow{
		SaleInvoice:     model.SaleInvoice{ID: 1, InvoiceNumber: "SQ00000001"},
		CustomerName:    strPtr("Rauf"),
		CustomerPhone:   strPtr("+994501112233"),
		CustomerAddress: nil,
	}

	resp := Invoice(row)
	require.NotNil(t, resp.Customers)
	assert.Equal(t, "Rauf", *resp.Customers.Name)
	assert.Equal(t, "+994501112233", *resp.Customers.Phone)
	assert.Nil(t, resp.Customers.Address)
}

func TestInvoiceOmitsCustomerSnapshotWhenJoinMissed(t *testing.T) {
	resp := Invoice(InvoiceRow{
		SaleInvoice: model.SaleInvoice{ID: 2, InvoiceNumber: "SQ00000002"},
	})
	assert.Nil(t, resp.Customers)
}

func TestInvoicesMapsEveryRow(t *testing.T) {
	rows := []InvoiceRow{
		{SaleInvoice: model.SaleInvoice{ID: 1, InvoiceNumber: "SQ00000001"}},
		{SaleInvoice: model.SaleInvoice{ID: 2, InvoiceNumber: "SQ00000002"}, CustomerName: strPtr("X")},
	}

	out := Invoices(rows)
	require.Len(t, out, 2)
	assert.Nil(t, out[0].Customers)
	assert.NotNil(t, out[1].Customers)
}

func TestInvoiceItemsCarryJoinedProductColumns(t *testing.T) {
	rows := []InvoiceItemRow{
		{
			SaleInvoiceItem: model.SaleInvoiceItem{ID: 1},
			ProductName:     strPtr("Cola"),
			ProductUnit:     strPtr("pcs"),
		},
	}

	out := InvoiceItems(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "Cola", *out[0].ProductName)
	assert.Equal(t, "pcs", *out[0].ProductUnit)
	assert.Nil(t, out[0].ProductBarcode)
}
