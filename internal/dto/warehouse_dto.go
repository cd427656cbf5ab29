package dto

import "github.com/shopspring/decimal"

type UpdateWarehouseRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}
