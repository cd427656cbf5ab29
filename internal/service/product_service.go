package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductWithRelations, error)
	Get(ctx context.Context, id int) (*dto.ProductWithRelations, error)
	Discounts(ctx context.Context, productID int) ([]model.ProductDiscount, error)
	Export(ctx context.Context, filter dto.ProductFilter) (*excelize.File, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductWithRelations, error) {
	rows, err := s.repo.ListRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.GroupProducts(rows), nil
}

func (s *productService) Get(ctx context.Context, id int) (*dto.ProductWithRelations, error) {
	rows, err := s.repo.FindRows(ctx, id)
	if err != nil {
		return nil, err
	}
	grouped := mapper.GroupProducts(rows)
	if len(grouped) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &grouped[0], nil
}

func (s *productService) Discounts(ctx context.Context, productID int) ([]model.ProductDiscount, error) {
	return s.repo.Discounts(ctx, productID)
}

// Export renders the filtered product list as an XLSX workbook with one
// row per product and the stock summed across warehouses.
func (s *productService) Export(ctx context.Context, filter dto.ProductFilter) (*excelize.File, error) {
	products, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Products"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "Code", "Barcode", "Unit", "Sale Price", "Purchase Price", "Category", "Stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range products {
		stock := "0"
		if len(p.Warehouse) > 0 {
			sum := p.Warehouse[0].Quantity
			for _, w := range p.Warehouse[1:] {
				if w.Quantity != nil && sum != nil {
					added := sum.Add(*w.Quantity)
					sum = &added
				}
			}
			if sum != nil {
				stock = sum.String()
			}
		}
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}

		values := []interface{}{
			p.ID,
			p.Name,
			deref(p.Code),
			deref(p.Barcode),
			deref(p.Unit),
			decimalString(p.SalePrice),
			decimalString(p.PurchasePrice),
			category,
			stock,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
