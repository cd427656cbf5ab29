package dto

import (
	"encoding/json"
	"time"
)

// ActivityLogBatchRequest is the body of POST /api/logs: {"logs": [...]}.
type ActivityLogBatchRequest struct {
	Logs []ActivityLogEntry `json:"logs" validate:"dive"`
}

type ActivityLogEntry struct {
	LogID     *string         `json:"log_id"`
	UserID    *int            `json:"user_id"`
	Timestamp *time.Time      `json:"timestamp"`
	Level     *string         `json:"level"`
	Category  *string         `json:"category"`
	Action    string          `json:"action" validate:"required"`
	Details   *string         `json:"details"`
	Metadata  json.RawMessage `json:"metadata"`
}

type ActivityLogBatchResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
