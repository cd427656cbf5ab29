package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
)

type PurchaseRepository interface {
	DB() *gorm.DB

	LockInvoiceSequence(ctx context.Context, tx *gorm.DB, prefix string) error
	LastInvoiceNumber(ctx context.Context, tx *gorm.DB) (last string, found bool, err error)

	CreateInvoice(ctx context.Context, tx *gorm.DB, inv *model.PurchaseInvoice) error
	CreateItem(ctx context.Context, tx *gorm.DB, item *model.PurchaseInvoiceItem) error
	DeleteItems(ctx context.Context, invoiceID int) error
	DeleteInvoice(ctx context.Context, id int) error

	FindByID(ctx context.Context, id int) (*model.PurchaseInvoice, error)
	FindItemRows(ctx context.Context, invoiceID int) ([]mapper.PurchaseItemRow, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.PurchaseInvoice, int64, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) LockInvoiceSequence(ctx context.Context, tx *gorm.DB, prefix string) error {
	return acquireSequenceLock(ctx, tx, prefix)
}

func (r *purchaseRepo) LastInvoiceNumber(ctx context.Context, tx *gorm.DB) (string, bool, error) {
	var numbers []string
	err := tx.WithContext(ctx).
		Raw("SELECT invoice_number FROM purchase_invoices ORDER BY id DESC LIMIT 1").
		Scan(&numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", false, err
	}
	return numbers[0], true, nil
}

func (r *purchaseRepo) CreateInvoice(ctx context.Context, tx *gorm.DB, inv *model.PurchaseInvoice) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *purchaseRepo) CreateItem(ctx context.Context, tx *gorm.DB, item *model.PurchaseInvoiceItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *purchaseRepo) DeleteItems(ctx context.Context, invoiceID int) error {
	return r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&model.PurchaseInvoiceItem{}).Error
}

func (r *purchaseRepo) DeleteInvoice(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PurchaseInvoice{}).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id int) (*model.PurchaseInvoice, error) {
	var inv model.PurchaseInvoice
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *purchaseRepo) FindItemRows(ctx context.Context, invoiceID int) ([]mapper.PurchaseItemRow, error) {
	var rows []mapper.PurchaseItemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.id, i.invoice_id, i.product_id, i.quantity, i.unit_price,
			i.total_price, i.discount_auto, i.discount_manual,
			p.name AS product_name, p.code AS product_code,
			p.barcode AS product_barcode, p.unit AS product_unit
		FROM purchase_invoice_items i
		LEFT JOIN products p ON i.product_id = p.id
		WHERE i.invoice_id = ?
		ORDER BY i.id`, invoiceID).Scan(&rows).Error
	return rows, err
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.PurchaseInvoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PurchaseInvoice{})
	if filter.Search != "" {
		q = q.Where("invoice_number ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var invoices []model.PurchaseInvoice
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&invoices).Error
	return invoices, total, err
}
