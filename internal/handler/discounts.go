package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/apierror"
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/service"
)

type DiscountsHandler struct{ svc service.DiscountService }

func NewDiscountsHandler(svc service.DiscountService) *DiscountsHandler {
	return &DiscountsHandler{svc: svc}
}

// List godoc
// @Summary      List discount documents with items
// @Tags         discounts
// @Produce      json
// @Param        type        query string false "product or supplier"
// @Param        entity_id   query int    false "Entity filter"
// @Param        active_only query bool   false "Only active documents"
// @Success      200 {array} model.DiscountDocument
// @Router       /documents/discounts [get]
func (h *DiscountsHandler) List(c *gin.Context) {
	var filter dto.DiscountDocumentFilter
	if !bindQuery(c, &filter) {
		return
	}
	docs, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list discount documents")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list discount documents"))
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Get godoc
// @Summary      Fetch one discount document with items
// @Tags         discounts
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} model.DiscountDocument
// @Failure      404 {object} apierror.APIError
// @Router       /documents/discounts/{id} [get]
func (h *DiscountsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Discount document not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create godoc
// @Summary      Create a discount document with items
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateDiscountDocumentRequest true "Document payload"
// @Success      201 {object} model.DiscountDocument
// @Router       /documents/discounts [post]
func (h *DiscountsHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	doc, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create discount document")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create discount document"))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Update godoc
// @Summary      Rewrite a discount document and replace its items
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        id   path int true "Document ID"
// @Param        body body dto.UpdateDiscountDocumentRequest true "Document payload"
// @Success      200 {object} model.DiscountDocument
// @Failure      404 {object} apierror.APIError
// @Router       /documents/discounts/{id} [put]
func (h *DiscountsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateDiscountDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	doc, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Discount document not found"))
			return
		}
		log.Error().Err(err).Int("document_id", id).Msg("failed to update discount document")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update discount document"))
		return
	}
	c.JSON(http.StatusOK, doc)
}
