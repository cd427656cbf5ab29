package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
)

type DiscountRepository interface {
	DB() *gorm.DB

	ListDocuments(ctx context.Context, filter dto.DiscountDocumentFilter) ([]model.DiscountDocument, error)
	FindDocument(ctx context.Context, id int) (*model.DiscountDocument, error)
	CreateDocument(ctx context.Context, tx *gorm.DB, doc *model.DiscountDocument) error
	UpdateDocument(ctx context.Context, tx *gorm.DB, id int, updates map[string]interface{}) error
	DeleteDocumentItems(ctx context.Context, tx *gorm.DB, documentID int) error
	CreateDocumentItems(ctx context.Context, tx *gorm.DB, items []model.DiscountDocumentItem) error
}

type discountRepo struct{ db *gorm.DB }

func NewDiscountRepository(db *gorm.DB) DiscountRepository { return &discountRepo{db: db} }

func (r *discountRepo) DB() *gorm.DB { return r.db }

func (r *discountRepo) ListDocuments(ctx context.Context, filter dto.DiscountDocumentFilter) ([]model.DiscountDocument, error) {
	q := r.db.WithContext(ctx).Preload("Items")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.EntityID != nil {
		q = q.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var docs []model.DiscountDocument
	err := q.Order("document_date DESC").Find(&docs).Error
	return docs, err
}

func (r *discountRepo) FindDocument(ctx context.Context, id int) (*model.DiscountDocument, error) {
	var doc model.DiscountDocument
	if err := r.db.WithContext(ctx).Preload("Items").First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *discountRepo) CreateDocument(ctx context.Context, tx *gorm.DB, doc *model.DiscountDocument) error {
	return tx.WithContext(ctx).Create(doc).Error
}

func (r *discountRepo) UpdateDocument(ctx context.Context, tx *gorm.DB, id int, updates map[string]interface{}) error {
	return tx.WithContext(ctx).
		Model(&model.DiscountDocument{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *discountRepo) DeleteDocumentItems(ctx context.Context, tx *gorm.DB, documentID int) error {
	return tx.WithContext(ctx).
		Where("document_id = ?", documentID).
		Delete(&model.DiscountDocumentItem{}).Error
}

func (r *discountRepo) CreateDocumentItems(ctx context.Context, tx *gorm.DB, items []model.DiscountDocumentItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}
