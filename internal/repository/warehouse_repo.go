package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/model"
)

// StockInfo carries what the low-stock check needs after a quantity update.
type StockInfo struct {
	ProductID   int
	ProductName string
	Quantity    *decimal.Decimal
	MinStock    *decimal.Decimal
}

type WarehouseRepository interface {
	ListAll(ctx context.Context) ([]model.Warehouse, error)
	UpdateQuantity(ctx context.Context, id int, qty decimal.Decimal) (*model.Warehouse, error)
	FindStockInfo(ctx context.Context, warehouseID int) (*StockInfo, error)
}

type warehouseRepo struct{ db *gorm.DB }

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository { return &warehouseRepo{db: db} }

func (r *warehouseRepo) ListAll(ctx context.Context) ([]model.Warehouse, error) {
	var rows []model.Warehouse
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *warehouseRepo) UpdateQuantity(ctx context.Context, id int, qty decimal.Decimal) (*model.Warehouse, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&model.Warehouse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": qty, "updated_at": now})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var w model.Warehouse
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *warehouseRepo) FindStockInfo(ctx context.Context, warehouseID int) (*StockInfo, error) {
	var info StockInfo
	res := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS product_id, p.name AS product_name,
		       w.quantity, p.min_stock
		FROM warehouse w
		JOIN products p ON w.product_id = p.id
		WHERE w.id = ?`, warehouseID).Scan(&info)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &info, nil
}
