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

// OrderService owns the sale invoice lifecycle: sequential numbering,
// atomic header+items writes and whole-set item replacement.
type OrderService interface {
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	Get(ctx context.Context, id int) (*dto.OrderResponse, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	SetActiveStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Data: mapper.Invoices(rows),
		Pagination: dto.PaginationMeta{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	}, nil
}

func (s *orderService) Get(ctx context.Context, id int) (*dto.OrderResponse, error) {
	row, err := s.repo.FindRow(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.Invoice(*row)

	// Items are secondary to the header: a failed item read degrades to an
	// empty list instead of failing the whole fetch.
	itemRows, err := s.repo.FindItemRows(ctx, id)
	if err != nil {
		log.Warn().Int("invoice_id", id).Err(err).Msg("failed to fetch invoice items")
		itemRows = nil
	}
	resp.Items = mapper.InvoiceItems(itemRows)
	return &resp, nil
}

// Create allocates the next SQ number and writes the header plus all items
// in one transaction. Any item insert failure rolls the whole invoice back:
// a partially written invoice would report a total_amount its stored items
// do not add up to.
func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	total := SumItemTotals(req.Items)
	inactive := false

	var created model.SaleInvoice
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.LockInvoiceSequence(ctx, tx, SaleInvoicePrefix); err != nil {
			return fmt.Errorf("lock invoice sequence: %w", err)
		}
		last, _, err := s.repo.LastInvoiceNumber(ctx, tx)
		if err != nil {
			return fmt.Errorf("read last invoice number: %w", err)
		}

		inv := model.SaleInvoice{
			InvoiceNumber: NextInvoiceNumber(SaleInvoicePrefix, last),
			CustomerID:    req.CustomerID,
			TotalAmount:   &total,
			InvoiceDate:   req.InvoiceDate,
			PaymentDate:   req.PaymentDate,
			Notes:         req.Notes,
			IsActive:      &inactive,
		}
		if err := s.repo.CreateInvoice(ctx, tx, &inv); err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		for _, it := range req.Items {
			pid := it.ProductID
			item := model.SaleInvoiceItem{
				InvoiceID:      &inv.ID,
				ProductID:      &pid,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				TotalPrice:     it.TotalPrice,
				DiscountAuto:   it.DiscountAuto,
				DiscountManual: it.DiscountManual,
			}
			if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
				return fmt.Errorf("create invoice item: %w", err)
			}
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The write is committed; a failed re-read must not turn a successful
	// create into an error response.
	row, err := s.repo.FindRow(ctx, created.ID)
	if err != nil {
		log.Warn().Int("invoice_id", created.ID).Err(err).
			Msg("invoice created but re-read failed; returning the written header")
		resp := mapper.Invoice(mapper.InvoiceRow{SaleInvoice: created})
		return &resp, nil
	}
	resp := mapper.Invoice(*row)
	return &resp, nil
}

// Update patches only the header fields present in the request. A present
// item list — empty included — replaces the whole item set and recomputes
// total_amount from scratch.
func (s *orderService) Update(ctx context.Context, id int, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if _, err := s.repo.FindRow(ctx, id); err != nil {
		return nil, err
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.CustomerID.Present {
			updates["customer_id"] = req.CustomerID.Ptr()
		}
		if req.InvoiceDate.Present {
			updates["invoice_date"] = req.InvoiceDate.Ptr()
		}
		if req.PaymentDate.Present {
			updates["payment_date"] = req.PaymentDate.Ptr()
		}
		if req.Notes.Present {
			updates["notes"] = req.Notes.Ptr()
		}

		if req.Items.Present && req.Items.Valid {
			items := req.Items.Value
			if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
				return fmt.Errorf("delete invoice items: %w", err)
			}
			for _, it := range items {
				pid := it.ProductID
				item := model.SaleInvoiceItem{
					InvoiceID:      &id,
					ProductID:      &pid,
					Quantity:       it.Quantity,
					UnitPrice:      it.UnitPrice,
					TotalPrice:     it.TotalPrice,
					DiscountAuto:   it.DiscountAuto,
					DiscountManual: it.DiscountManual,
				}
				if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
					return fmt.Errorf("create invoice item: %w", err)
				}
			}
			updates["total_amount"] = SumItemTotals(items)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := s.repo.UpdateHeader(ctx, tx, id, updates); err != nil {
			return fmt.Errorf("update invoice header: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	row, err := s.repo.FindRow(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch updated invoice: %w", err)
	}
	resp := mapper.Invoice(*row)
	return &resp, nil
}

func (s *orderService) SetActiveStatus(ctx context.Context, id int, active bool) error {
	if _, err := s.repo.FindRow(ctx, id); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes items first so the header never outlives them and a crash
// between the two statements cannot orphan line items.
func (s *orderService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindRow(ctx, id); err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		if err := s.repo.DeleteInvoice(ctx, tx, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}
