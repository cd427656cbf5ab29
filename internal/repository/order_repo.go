package repository

import (
	"context"
	"hash/fnv"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
)

// invoiceColumns is the shared SELECT list for sale invoice reads joined
// against customers.
const invoiceColumns = `
	i.id, i.invoice_number, i.customer_id, i.total_amount, i.invoice_date,
	i.notes, i.created_at, i.payment_date, i.is_active,
	c.name AS customer_name, c.phone AS customer_phone, c.address AS customer_address`

// orderSortColumns is the allow-list for GET /api/orders sorting. Anything
// not listed falls back to created_at.
var orderSortColumns = map[string]string{
	"invoice_number": "i.invoice_number",
	"invoice_date":   "i.invoice_date",
	"total_amount":   "i.total_amount",
	"customers":      "c.name", // frontend sends "customers" for the name column
	"customer_name":  "c.name",
	"created_at":     "i.created_at",
}

type OrderRepository interface {
	// DB exposes the handle for transaction creation in the service layer.
	DB() *gorm.DB

	LockInvoiceSequence(ctx context.Context, tx *gorm.DB, prefix string) error
	LastInvoiceNumber(ctx context.Context, tx *gorm.DB) (last string, found bool, err error)

	CreateInvoice(ctx context.Context, tx *gorm.DB, inv *model.SaleInvoice) error
	CreateItem(ctx context.Context, tx *gorm.DB, item *model.SaleInvoiceItem) error
	DeleteItems(ctx context.Context, tx *gorm.DB, invoiceID int) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, id int, updates map[string]interface{}) error

	SetActive(ctx context.Context, id int, active bool) error
	DeleteInvoice(ctx context.Context, tx *gorm.DB, id int) error

	FindRow(ctx context.Context, id int) (*mapper.InvoiceRow, error)
	FindItemRows(ctx context.Context, invoiceID int) ([]mapper.InvoiceItemRow, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]mapper.InvoiceRow, int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

// sequenceLockKey derives a stable advisory-lock key per number prefix so
// sale (SQ) and purchase (AQ) sequences serialize independently.
func sequenceLockKey(prefix string) int64 {
	h := fnv.New64a()
	h.Write([]byte("invoice_seq:" + prefix))
	return int64(h.Sum64())
}

// acquireSequenceLock takes a transaction-scoped advisory lock. It is
// released automatically at commit/rollback, which covers the whole
// read-last / insert span of number generation.
func acquireSequenceLock(ctx context.Context, tx *gorm.DB, prefix string) error {
	return tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", sequenceLockKey(prefix)).Error
}

func (r *orderRepo) LockInvoiceSequence(ctx context.Context, tx *gorm.DB, prefix string) error {
	return acquireSequenceLock(ctx, tx, prefix)
}

func (r *orderRepo) LastInvoiceNumber(ctx context.Context, tx *gorm.DB) (string, bool, error) {
	var numbers []string
	err := tx.WithContext(ctx).
		Raw("SELECT invoice_number FROM sale_invoices ORDER BY id DESC LIMIT 1").
		Scan(&numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", false, err
	}
	return numbers[0], true, nil
}

func (r *orderRepo) CreateInvoice(ctx context.Context, tx *gorm.DB, inv *model.SaleInvoice) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *orderRepo) CreateItem(ctx context.Context, tx *gorm.DB, item *model.SaleInvoiceItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *orderRepo) DeleteItems(ctx context.Context, tx *gorm.DB, invoiceID int) error {
	return tx.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&model.SaleInvoiceItem{}).Error
}

func (r *orderRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, id int, updates map[string]interface{}) error {
	return tx.WithContext(ctx).
		Model(&model.SaleInvoice{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *orderRepo) SetActive(ctx context.Context, id int, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.SaleInvoice{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *orderRepo) DeleteInvoice(ctx context.Context, tx *gorm.DB, id int) error {
	return tx.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SaleInvoice{}).Error
}

func (r *orderRepo) FindRow(ctx context.Context, id int) (*mapper.InvoiceRow, error) {
	var row mapper.InvoiceRow
	res := r.db.WithContext(ctx).Raw(`
		SELECT `+invoiceColumns+`
		FROM sale_invoices i
		LEFT JOIN customers c ON i.customer_id = c.id
		WHERE i.id = ?`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *orderRepo) FindItemRows(ctx context.Context, invoiceID int) ([]mapper.InvoiceItemRow, error) {
	var rows []mapper.InvoiceItemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.id, i.invoice_id, i.product_id, i.quantity, i.unit_price,
			i.total_price, i.discount_auto, i.discount_manual,
			p.name AS product_name, p.code AS product_code,
			p.barcode AS product_barcode, p.unit AS product_unit
		FROM sale_invoice_items i
		LEFT JOIN products p ON i.product_id = p.id
		WHERE i.invoice_id = ?
		ORDER BY i.id`, invoiceID).Scan(&rows).Error
	return rows, err
}

// List returns one page of invoices plus the total matching count computed
// with the same predicate. Search input is always a bind parameter.
func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]mapper.InvoiceRow, int64, error) {
	where := "1=1"
	args := []interface{}{}
	if filter.Search != "" {
		where += " AND i.invoice_number ILIKE ?"
		args = append(args, "%"+filter.Search+"%")
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM sale_invoices i WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := orderSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "i.created_at"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	var rows []mapper.InvoiceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+invoiceColumns+`
		FROM sale_invoices i
		LEFT JOIN customers c ON i.customer_id = c.id
		WHERE `+where+`
		ORDER BY `+sortColumn+` `+direction+`
		LIMIT ? OFFSET ?`, append(args, filter.Limit, offset)...).Scan(&rows).Error
	return rows, total, err
}
