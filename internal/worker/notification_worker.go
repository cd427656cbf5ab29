package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

// NotificationWorker turns queued low-stock jobs into notification rows.
type NotificationWorker struct {
	repo repository.NotificationRepository
}

func NewNotificationWorker(repo repository.NotificationRepository) *NotificationWorker {
	return &NotificationWorker{repo: repo}
}

func (w *NotificationWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var p LowStockPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode low-stock payload: %w", err)
	}

	now := time.Now().UTC()
	unread := false
	n := &model.Notification{
		// UserID 0 is the broadcast pseudo-user the frontend shows to everyone.
		UserID:    0,
		Type:      "low_stock",
		Title:     "Low stock",
		Message:   fmt.Sprintf("%s is below minimum stock (%s < %s)", p.ProductName, p.Quantity, p.MinStock),
		Timestamp: &now,
		Read:      &unread,
	}
	return w.repo.Create(ctx, n)
}
