package model

import "time"

type Notification struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	UserID    int        `gorm:"index" json:"user_id"`
	Type      string     `gorm:"column:type;not null" json:"type"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `gorm:"not null" json:"message"`
	Timestamp *time.Time `gorm:"index" json:"timestamp"`
	Read      *bool      `gorm:"default:false" json:"read"`
	CreatedAt *time.Time `json:"created_at"`
}
