package model

import (
	"encoding/json"
	"time"
)

// ActivityLog rows are pushed in batches by the frontend. LogID comes from
// the client when available; the server generates a UUID otherwise.
type ActivityLog struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	LogID     string          `gorm:"uniqueIndex;not null" json:"log_id"`
	UserID    *int            `json:"user_id"`
	Timestamp *time.Time      `json:"timestamp"`
	Level     string          `gorm:"not null;default:'INFO'" json:"level"`
	Category  string          `gorm:"not null;default:'GENERAL'" json:"category"`
	Action    string          `gorm:"not null" json:"action"`
	Details   *string         `json:"details"`
	Metadata  json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt *time.Time      `json:"created_at"`
}
