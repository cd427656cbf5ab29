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

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// List godoc
// @Summary      List purchase invoices
// @Tags         purchases
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /purchase-invoices [get]
func (h *PurchasesHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if !bindQuery(c, &filter) {
		return
	}
	invoices, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		// Same degradation contract as the orders list: always the envelope.
		log.Error().Err(err).Msg("failed to list purchase invoices")
		c.JSON(http.StatusInternalServerError, gin.H{
			"data":       []dto.PurchaseInvoiceResponse{},
			"pagination": dto.PaginationMeta{Page: filter.Page, Limit: filter.Limit, Total: 0},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": invoices,
		"pagination": dto.PaginationMeta{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	})
}

// Get godoc
// @Summary      Fetch one purchase invoice with items
// @Tags         purchases
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      200 {object} dto.PurchaseInvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /purchase-invoices/{id} [get]
func (h *PurchasesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Purchase invoice not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create a purchase invoice
// @Description  Allocates the next sequential AQ number and writes header plus items atomically.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body body dto.CreatePurchaseInvoiceRequest true "Invoice payload"
// @Success      201 {object} dto.PurchaseInvoiceResponse
// @Router       /purchase-invoices [post]
func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create purchase invoice")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create purchase invoice"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Delete godoc
// @Summary      Delete a purchase invoice and its items
// @Tags         purchases
// @Param        id path int true "Invoice ID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /purchase-invoices/{id} [delete]
func (h *PurchasesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Purchase invoice not found"))
			return
		}
		log.Error().Err(err).Int("invoice_id", id).Msg("failed to delete purchase invoice")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete purchase invoice"))
		return
	}
	c.Status(http.StatusNoContent)
}
