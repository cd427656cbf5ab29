package repository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
)

// productColumns aliases the joined warehouse and category columns so one
// flat scan carries all three entities.
const productColumns = `
	p.*,
	w.id AS warehouse_id, w.product_id AS warehouse_product_id,
	w.quantity AS warehouse_quantity, w.updated_at AS warehouse_updated_at,
	c.id AS category_id_join, c.name AS category_name, c.parent_id AS category_parent_id,
	c.created_at AS category_created_at, c.updated_at AS category_updated_at`

type ProductRepository interface {
	ListRows(ctx context.Context, filter dto.ProductFilter) ([]mapper.ProductRow, error)
	FindRows(ctx context.Context, id int) ([]mapper.ProductRow, error)
	Discounts(ctx context.Context, productID int) ([]model.ProductDiscount, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// ListRows fetches one page of join rows. The LIMIT applies to the joined
// rowset, matching the upstream API: a product with many warehouse rows
// consumes several slots of the page.
func (r *productRepo) ListRows(ctx context.Context, filter dto.ProductFilter) ([]mapper.ProductRow, error) {
	where := "1=1"
	args := []interface{}{}

	if filter.Search != "" {
		where += " AND (p.name ILIKE ? OR p.code ILIKE ? OR p.barcode ILIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.CategoryID != nil {
		where += " AND p.category_id = ?"
		args = append(args, *filter.CategoryID)
	}
	if ids := parseIDList(filter.IDs); len(ids) > 0 {
		where += " AND p.id IN ?"
		args = append(args, ids)
	}

	offset := (filter.Page - 1) * filter.Limit
	var rows []mapper.ProductRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN warehouse w ON p.id = w.product_id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE `+where+`
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?`, append(args, filter.Limit, offset)...).Scan(&rows).Error
	return rows, err
}

func (r *productRepo) FindRows(ctx context.Context, id int) ([]mapper.ProductRow, error) {
	var rows []mapper.ProductRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN warehouse w ON p.id = w.product_id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = ?`, id).Scan(&rows).Error
	return rows, err
}

func (r *productRepo) Discounts(ctx context.Context, productID int) ([]model.ProductDiscount, error) {
	var discounts []model.ProductDiscount
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&discounts).Error
	return discounts, err
}

// parseIDList turns "1,2,3" into ints, skipping garbage entries.
func parseIDList(raw string) []int {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
