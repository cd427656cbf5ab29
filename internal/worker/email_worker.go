package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kral14/mobilsayt/internal/infra"
)

// EmailWorker delivers queued mail jobs through the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Handle(_ context.Context, payload json.RawMessage) error {
	var p EmailPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode email payload: %w", err)
	}
	if p.To == "" {
		// No alert recipient configured — drop silently.
		return nil
	}
	return w.mailer.Send(p.To, p.Subject, p.Body)
}
