package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
	"github.com/kral14/mobilsayt/internal/worker"
)

type WarehouseService interface {
	List(ctx context.Context) ([]model.Warehouse, error)
	UpdateQuantity(ctx context.Context, id int, qty decimal.Decimal) (*model.Warehouse, error)
}

type warehouseService struct {
	repo       repository.WarehouseRepository
	dispatcher *worker.Dispatcher
	alertEmail string
}

// NewWarehouseService wires the optional async alert path. A nil dispatcher
// disables alerts (tests, redis down at startup).
func NewWarehouseService(repo repository.WarehouseRepository, dispatcher *worker.Dispatcher, alertEmail string) WarehouseService {
	return &warehouseService{repo: repo, dispatcher: dispatcher, alertEmail: alertEmail}
}

func (s *warehouseService) List(ctx context.Context) ([]model.Warehouse, error) {
	return s.repo.ListAll(ctx)
}

func (s *warehouseService) UpdateQuantity(ctx context.Context, id int, qty decimal.Decimal) (*model.Warehouse, error) {
	w, err := s.repo.UpdateQuantity(ctx, id, qty)
	if err != nil {
		return nil, err
	}
	s.checkLowStock(ctx, id)
	return w, nil
}

// checkLowStock enqueues notification and email jobs when the new quantity
// is below the product's minimum. Alerting is best-effort: failures are
// logged, never surfaced to the API caller.
func (s *warehouseService) checkLowStock(ctx context.Context, warehouseID int) {
	if s.dispatcher == nil {
		return
	}
	info, err := s.repo.FindStockInfo(ctx, warehouseID)
	if err != nil {
		log.Debug().Int("warehouse_id", warehouseID).Err(err).Msg("low-stock check skipped")
		return
	}
	if info.Quantity == nil || info.MinStock == nil || !info.Quantity.LessThan(*info.MinStock) {
		return
	}

	payload := worker.LowStockPayload{
		ProductID:   info.ProductID,
		ProductName: info.ProductName,
		Quantity:    info.Quantity.String(),
		MinStock:    info.MinStock.String(),
	}
	if err := s.dispatcher.EnqueueLowStock(ctx, payload); err != nil {
		log.Error().Err(err).Msg("failed to enqueue low-stock notification")
	}
	if s.alertEmail != "" {
		email := worker.EmailPayload{
			To:      s.alertEmail,
			Subject: "Low stock: " + info.ProductName,
			Body:    "Product " + info.ProductName + " dropped to " + payload.Quantity + " (minimum " + payload.MinStock + ").",
		}
		if err := s.dispatcher.EnqueueEmail(ctx, email); err != nil {
			log.Error().Err(err).Msg("failed to enqueue low-stock email")
		}
	}
}
