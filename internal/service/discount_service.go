package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type DiscountService interface {
	List(ctx context.Context, filter dto.DiscountDocumentFilter) ([]model.DiscountDocument, error)
	Get(ctx context.Context, id int) (*model.DiscountDocument, error)
	Create(ctx context.Context, req dto.CreateDiscountDocumentRequest) (*model.DiscountDocument, error)
	Update(ctx context.Context, id int, req dto.UpdateDiscountDocumentRequest) (*model.DiscountDocument, error)
}

type discountService struct {
	repo repository.DiscountRepository
}

func NewDiscountService(repo repository.DiscountRepository) DiscountService {
	return &discountService{repo: repo}
}

func (s *discountService) List(ctx context.Context, filter dto.DiscountDocumentFilter) ([]model.DiscountDocument, error) {
	return s.repo.ListDocuments(ctx, filter)
}

func (s *discountService) Get(ctx context.Context, id int) (*model.DiscountDocument, error) {
	return s.repo.FindDocument(ctx, id)
}

func (s *discountService) Create(ctx context.Context, req dto.CreateDiscountDocumentRequest) (*model.DiscountDocument, error) {
	doc := model.DiscountDocument{
		DocumentNumber: req.DocumentNumber,
		DocumentDate:   req.DocumentDate,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Type:           req.Type,
		EntityID:       req.EntityID,
		Notes:          req.Notes,
		Items:          documentItems(0, req.Items),
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateDocument(ctx, tx, &doc)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindDocument(ctx, doc.ID)
}

// Update rewrites the header and replaces the whole item set in one
// transaction, the same way invoice items are replaced.
func (s *discountService) Update(ctx context.Context, id int, req dto.UpdateDiscountDocumentRequest) (*model.DiscountDocument, error) {
	if _, err := s.repo.FindDocument(ctx, id); err != nil {
		return nil, err
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"document_number": req.DocumentNumber,
			"document_date":   req.DocumentDate,
			"start_date":      req.StartDate,
			"end_date":        req.EndDate,
			"type":            req.Type,
			"entity_id":       req.EntityID,
			"notes":           req.Notes,
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if err := s.repo.UpdateDocument(ctx, tx, id, updates); err != nil {
			return fmt.Errorf("update discount document: %w", err)
		}
		if err := s.repo.DeleteDocumentItems(ctx, tx, id); err != nil {
			return fmt.Errorf("delete discount items: %w", err)
		}
		if err := s.repo.CreateDocumentItems(ctx, tx, documentItems(id, req.Items)); err != nil {
			return fmt.Errorf("create discount items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindDocument(ctx, id)
}

func documentItems(documentID int, items []dto.DiscountDocumentItemRequest) []model.DiscountDocumentItem {
	out := make([]model.DiscountDocumentItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.DiscountDocumentItem{
			DocumentID:      documentID,
			ProductID:       it.ProductID,
			DiscountPercent: it.DiscountPercent,
			Description:     it.Description,
		})
	}
	return out
}
