package dto

import "github.com/kral14/mobilsayt/internal/model"

// ProductFilter is bound from the query string of GET /api/products.
type ProductFilter struct {
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=500"`
	Search     string `form:"search"`
	CategoryID *int   `form:"category_id"`
	IDs        string `form:"ids"` // comma-separated product ids
}

// ProductWithRelations is one product with every warehouse row that
// references it and its (at most one) category.
type ProductWithRelations struct {
	model.Product
	Warehouse []model.Warehouse `json:"warehouse"`
	Category  *model.Category   `json:"category"`
}
