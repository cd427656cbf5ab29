package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
)

// ProductRow is the flat scan target for the products query: base product
// columns plus aliased warehouse and category columns from the LEFT JOINs.
// A product with N warehouse rows appears on N consecutive rows.
type ProductRow struct {
	model.Product

	WarehouseID        *int             `gorm:"column:warehouse_id"`
	WarehouseProductID *int             `gorm:"column:warehouse_product_id"`
	WarehouseQuantity  *decimal.Decimal `gorm:"column:warehouse_quantity"`
	WarehouseUpdatedAt *time.Time       `gorm:"column:warehouse_updated_at"`

	CategoryIDJoin    *int       `gorm:"column:category_id_join"`
	CategoryName      *string    `gorm:"column:category_name"`
	CategoryParentID  *int       `gorm:"column:category_parent_id"`
	CategoryCreatedAt *time.Time `gorm:"column:category_created_at"`
	CategoryUpdatedAt *time.Time `gorm:"column:category_updated_at"`
}

// GroupProducts folds join rows into one response object per distinct
// product id, preserving first-seen order. Warehouse rows accumulate;
// category is 1:1 so every row of a group carries identical category data
// and only the first is used.
func GroupProducts(rows []ProductRow) []dto.ProductWithRelations {
	index := make(map[int]int, len(rows))
	out := make([]dto.ProductWithRelations, 0, len(rows))

	for _, row := range rows {
		pos, seen := index[row.Product.ID]
		if !seen {
			p := row.Product
			p.CreatedAt = UTC(p.CreatedAt)
			p.UpdatedAt = UTC(p.UpdatedAt)
			p.ProductionDate = UTC(p.ProductionDate)
			p.ExpiryDate = UTC(p.ExpiryDate)

			out = append(out, dto.ProductWithRelations{
				Product:   p,
				Warehouse: []model.Warehouse{},
				Category:  categoryFromRow(row),
			})
			pos = len(out) - 1
			index[row.Product.ID] = pos
		}

		if row.WarehouseID != nil {
			out[pos].Warehouse = append(out[pos].Warehouse, model.Warehouse{
				ID:        *row.WarehouseID,
				ProductID: row.WarehouseProductID,
				Quantity:  row.WarehouseQuantity,
				UpdatedAt: UTC(row.WarehouseUpdatedAt),
			})
		}
	}
	return out
}

func categoryFromRow(row ProductRow) *model.Category {
	if row.CategoryIDJoin == nil {
		return nil
	}
	name := ""
	if row.CategoryName != nil {
		name = *row.CategoryName
	}
	return &model.Category{
		ID:        *row.CategoryIDJoin,
		Name:      name,
		ParentID:  row.CategoryParentID,
		CreatedAt: UTC(row.CategoryCreatedAt),
		UpdatedAt: UTC(row.CategoryUpdatedAt),
	}
}
