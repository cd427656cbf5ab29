package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kral14/mobilsayt/internal/model"
)

type CustomerFilter struct {
	Type string `form:"type"` // BUYER | SUPPLIER; empty = all
}

type CustomerWithFolder struct {
	model.Customer
	Folder *model.CustomerFolder `json:"folder"`
}

type CreateCustomerRequest struct {
	Name              string           `json:"name" validate:"required"`
	Phone             *string          `json:"phone"`
	Email             *string          `json:"email" validate:"omitempty,email"`
	Address           *string          `json:"address"`
	Balance           *decimal.Decimal `json:"balance"`
	FolderID          *int             `json:"folder_id"`
	Code              *string          `json:"code"`
	IsActive          *bool            `json:"is_active"`
	Type              *string          `json:"type" validate:"omitempty,oneof=BUYER SUPPLIER"`
	PermanentDiscount *decimal.Decimal `json:"permanent_discount"`
}
