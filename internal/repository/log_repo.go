package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/model"
)

type LogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
}

type logRepo struct{ db *gorm.DB }

func NewLogRepository(db *gorm.DB) LogRepository { return &logRepo{db: db} }

func (r *logRepo) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
