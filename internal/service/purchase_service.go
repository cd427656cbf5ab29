package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

// PurchaseService mirrors the sale invoice lifecycle for incoming goods,
// with its own AQ number sequence.
type PurchaseService interface {
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.PurchaseInvoiceResponse, int64, error)
	Get(ctx context.Context, id int) (*dto.PurchaseInvoiceResponse, error)
	Create(ctx context.Context, req dto.CreatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error)
	Delete(ctx context.Context, id int) error
}

type purchaseService struct {
	repo repository.PurchaseRepository
}

func NewPurchaseService(repo repository.PurchaseRepository) PurchaseService {
	return &purchaseService{repo: repo}
}

func (s *purchaseService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.PurchaseInvoiceResponse, int64, error) {
	invoices, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.PurchaseInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, mapper.PurchaseInvoice(inv))
	}
	return out, total, nil
}

func (s *purchaseService) Get(ctx context.Context, id int) (*dto.PurchaseInvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.PurchaseInvoice(*inv)

	itemRows, err := s.repo.FindItemRows(ctx, id)
	if err != nil {
		log.Warn().Int("invoice_id", id).Err(err).Msg("failed to fetch purchase invoice items")
		itemRows = nil
	}
	resp.Items = mapper.PurchaseItems(itemRows)
	return &resp, nil
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	total := SumItemTotals(req.Items)
	active := req.IsActive
	if active == nil {
		f := false
		active = &f
	}

	var created model.PurchaseInvoice
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.LockInvoiceSequence(ctx, tx, PurchaseInvoicePrefix); err != nil {
			return fmt.Errorf("lock invoice sequence: %w", err)
		}
		last, _, err := s.repo.LastInvoiceNumber(ctx, tx)
		if err != nil {
			return fmt.Errorf("read last invoice number: %w", err)
		}

		inv := model.PurchaseInvoice{
			InvoiceNumber: NextInvoiceNumber(PurchaseInvoicePrefix, last),
			CustomerID:    req.CustomerID,
			TotalAmount:   &total,
			InvoiceDate:   req.InvoiceDate,
			PaymentDate:   req.PaymentDate,
			Notes:         req.Notes,
			IsActive:      active,
		}
		if err := s.repo.CreateInvoice(ctx, tx, &inv); err != nil {
			return fmt.Errorf("create purchase invoice: %w", err)
		}

		for _, it := range req.Items {
			pid := it.ProductID
			item := model.PurchaseInvoiceItem{
				InvoiceID:      &inv.ID,
				ProductID:      &pid,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				TotalPrice:     it.TotalPrice,
				DiscountAuto:   it.DiscountAuto,
				DiscountManual: it.DiscountManual,
			}
			if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
				return fmt.Errorf("create purchase invoice item: %w", err)
			}
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := mapper.PurchaseInvoice(created)
	return &resp, nil
}

func (s *purchaseService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteItems(ctx, id); err != nil {
		return fmt.Errorf("delete purchase invoice items: %w", err)
	}
	return s.repo.DeleteInvoice(ctx, id)
}
