package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

// ── In-memory OrderRepository stub ───────────────────────────────────────────

// stubOrderRepo emulates the sequence lock with a mutex taken in
// LockInvoiceSequence and released after the header insert — the span that
// matters for number generation.
type stubOrderRepo struct {
	mu     sync.Mutex
	seqMu  sync.Mutex
	nextID int

	invoices map[int]*model.SaleInvoice
	order    []int // insertion order, stands in for ORDER BY id
	items    map[int][]model.SaleInvoiceItem

	failItemInsert bool
	failFindRow    bool
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		invoices: make(map[int]*model.SaleInvoice),
		items:    make(map[int][]model.SaleInvoiceItem),
	}
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

func (r *stubOrderRepo) LockInvoiceSequence(_ context.Context, _ *gorm.DB, _ string) error {
	r.seqMu.Lock()
	return nil
}

func (r *stubOrderRepo) LastInvoiceNumber(_ context.Context, _ *gorm.DB) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return "", false, nil
	}
	return r.invoices[r.order[len(r.order)-1]].InvoiceNumber, true, nil
}

func (r *stubOrderRepo) CreateInvoice(_ context.Context, _ *gorm.DB, inv *model.SaleInvoice) error {
	r.mu.Lock()
	r.nextID++
	inv.ID = r.nextID
	now := time.Now().UTC()
	inv.CreatedAt = &now
	cloned := *inv
	r.invoices[inv.ID] = &cloned
	r.order = append(r.order, inv.ID)
	r.mu.Unlock()

	r.seqMu.Unlock() // sequence span ends once the number is persisted
	return nil
}

func (r *stubOrderRepo) CreateItem(_ context.Context, _ *gorm.DB, item *model.SaleInvoiceItem) error {
	if r.failItemInsert {
		return errors.New("insert failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = len(r.items[*item.InvoiceID]) + 1
	r.items[*item.InvoiceID] = append(r.items[*item.InvoiceID], *item)
	return nil
}

func (r *stubOrderRepo) DeleteItems(_ context.Context, _ *gorm.DB, invoiceID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, invoiceID)
	return nil
}

func (r *stubOrderRepo) UpdateHeader(_ context.Context, _ *gorm.DB, id int, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, val := range updates {
		switch col {
		case "customer_id":
			inv.CustomerID, _ = val.(*int)
		case "invoice_date":
			inv.InvoiceDate, _ = val.(*time.Time)
		case "payment_date":
			inv.PaymentDate, _ = val.(*time.Time)
		case "notes":
			inv.Notes, _ = val.(*string)
		case "total_amount":
			total := val.(decimal.Decimal)
			inv.TotalAmount = &total
		}
	}
	return nil
}

func (r *stubOrderRepo) SetActive(_ context.Context, id int, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.IsActive = &active
	return nil
}

func (r *stubOrderRepo) DeleteInvoice(_ context.Context, _ *gorm.DB, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubOrderRepo) FindRow(_ context.Context, id int) (*mapper.InvoiceRow, error) {
	if r.failFindRow {
		return nil, errors.New("read failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &mapper.InvoiceRow{SaleInvoice: *inv}, nil
}

func (r *stubOrderRepo) FindItemRows(_ context.Context, invoiceID int) ([]mapper.InvoiceItemRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]mapper.InvoiceItemRow, 0, len(r.items[invoiceID]))
	for _, item := range r.items[invoiceID] {
		rows = append(rows, mapper.InvoiceItemRow{SaleInvoiceItem: item})
	}
	return rows, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]mapper.InvoiceRow, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]mapper.InvoiceRow, 0, len(r.order))
	for _, id := range r.order {
		rows = append(rows, mapper.InvoiceRow{SaleInvoice: *r.invoices[id]})
	}
	return rows, int64(len(rows)), nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func twoItems() []dto.CreateOrderItem {
	return []dto.CreateOrderItem{
		{ProductID: 1, Quantity: dec("2"), UnitPrice: dec("5.25"), TotalPrice: dec("10.50")},
		{ProductID: 2, Quantity: dec("1"), UnitPrice: dec("5.25"), TotalPrice: dec("5.25")},
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateFirstInvoiceGetsNumberOne(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)
	assert.Equal(t, "SQ00000001", resp.InvoiceNumber)
	require.NotNil(t, resp.IsActive)
	assert.False(t, *resp.IsActive, "new invoices start inactive")
}

func TestCreateContinuesSequence(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	// Seed the table at an arbitrary point in the sequence.
	seeded := model.SaleInvoice{InvoiceNumber: "SQ00000711"}
	require.NoError(t, repo.LockInvoiceSequence(context.Background(), nil, SaleInvoicePrefix))
	require.NoError(t, repo.CreateInvoice(context.Background(), nil, &seeded))

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "SQ00000712", resp.InvoiceNumber)
}

func TestCreateStoresExactDecimalTotal(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)
	require.NotNil(t, resp.TotalAmount)
	assert.Equal(t, "15.75", resp.TotalAmount.String())
	assert.Len(t, repo.items[resp.ID], 2)
}

func TestCreateWithoutItemsStoresZeroTotal(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.TotalAmount)
	assert.True(t, resp.TotalAmount.IsZero())
	assert.Empty(t, repo.items[resp.ID])
}

func TestCreateItemInsertFailureAborts(t *testing.T) {
	repo := newStubOrderRepo()
	repo.failItemInsert = true
	svc := NewOrderService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestCreateSucceedsWhenRereadFails(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)
	repo.failFindRow = true

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err, "committed write must not be reported as failed")
	assert.Equal(t, "SQ00000001", resp.InvoiceNumber)
}

func TestConcurrentCreatesYieldUniqueGaplessNumbers(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	const n = 25
	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{})
			if assert.NoError(t, err) {
				numbers <- resp.InvoiceNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate invoice number %s", num)
		seen[num] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("SQ%08d", i)], "missing SQ%08d", i)
	}
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdateReplacesItemsWithEmptyList(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Items: dto.Some([]dto.CreateOrderItem{}),
	})
	require.NoError(t, err)
	assert.Empty(t, repo.items[created.ID], "empty list clears all items")
	require.NotNil(t, resp.TotalAmount)
	assert.True(t, resp.TotalAmount.IsZero())
}

func TestUpdateAbsentItemsLeaveItemsUntouched(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)

	notes := "handover to courier"
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Notes: dto.Some(notes),
	})
	require.NoError(t, err)
	assert.Len(t, repo.items[created.ID], 2, "items survive a header-only update")
	require.NotNil(t, resp.Notes)
	assert.Equal(t, notes, *resp.Notes)
	require.NotNil(t, resp.TotalAmount)
	assert.Equal(t, "15.75", resp.TotalAmount.String(), "total untouched without an item list")
}

func TestUpdateNullClearsCustomer(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	customerID := 9
	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{CustomerID: &customerID})
	require.NoError(t, err)
	require.NotNil(t, repo.invoices[created.ID].CustomerID)

	_, err = svc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: dto.Null[int](),
	})
	require.NoError(t, err)
	assert.Nil(t, repo.invoices[created.ID].CustomerID)
}

func TestUpdateUnknownInvoiceReturnsNotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	_, err := svc.Update(context.Background(), 42, dto.UpdateOrderRequest{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// ── Status / Delete / Get ────────────────────────────────────────────────────

func TestSetActiveStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.SetActiveStatus(context.Background(), created.ID, true))
	require.NotNil(t, repo.invoices[created.ID].IsActive)
	assert.True(t, *repo.invoices[created.ID].IsActive)
}

func TestDeleteRemovesItemsAndHeader(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.items[created.ID], "no orphaned items")
	assert.NotContains(t, repo.invoices, created.ID)
}

func TestGetUnknownInvoiceReturnsNotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	_, err := svc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetReturnsItems(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{Items: twoItems()})
	require.NoError(t, err)

	resp, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListWrapsPaginationEnvelope(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), dto.CreateOrderRequest{})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), dto.OrderFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 50, resp.Pagination.Limit)
}
