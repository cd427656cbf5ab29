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

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler { return &OrdersHandler{svc: svc} }

// List godoc
// @Summary      List sale invoices
// @Description  Paginated invoice list with joined customer snapshots.
// @Tags         orders
// @Produce      json
// @Param        page     query int    false "Page number"    default(1)
// @Param        limit    query int    false "Page size"      default(50)
// @Param        search   query string false "Invoice number search"
// @Param        sort_by  query string false "Sort column"
// @Param        order    query string false "asc or desc"
// @Success      200 {object} dto.OrderListResponse
// @Router       /orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if !bindQuery(c, &filter) {
		return
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		// The desktop client always expects the envelope shape, so a failed
		// list degrades to an empty page instead of an error body.
		log.Error().Err(err).Msg("failed to list invoices")
		c.JSON(http.StatusInternalServerError, dto.OrderListResponse{
			Data:       []dto.OrderResponse{},
			Pagination: dto.PaginationMeta{Page: filter.Page, Limit: filter.Limit, Total: 0},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one sale invoice with items
// @Tags         orders
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Invoice not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create a sale invoice
// @Description  Allocates the next sequential SQ number and writes header plus items atomically.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateOrderRequest true "Invoice payload"
// @Success      201 {object} dto.OrderResponse
// @Failure      400 {object} apierror.APIError
// @Router       /orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create invoice")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create invoice"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary      Update a sale invoice
// @Description  Patches only the provided header fields; a provided item list replaces the whole set.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id   path int true "Invoice ID"
// @Param        body body dto.UpdateOrderRequest true "Fields to update"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /orders/{id} [put]
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Invoice not found"))
			return
		}
		log.Error().Err(err).Int("invoice_id", id).Msg("failed to update invoice")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update invoice"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Activate or deactivate an invoice
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id   path int true "Invoice ID"
// @Param        body body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} apierror.APIError "message envelope"
// @Router       /orders/{id}/status [put]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetActiveStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Invoice not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice status updated"})
}

// Delete godoc
// @Summary      Delete a sale invoice and its items
// @Tags         orders
// @Param        id path int true "Invoice ID"
// @Success      200 {object} apierror.APIError "message envelope"
// @Failure      404 {object} apierror.APIError
// @Router       /orders/{id} [delete]
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Invoice not found"))
			return
		}
		log.Error().Err(err).Int("invoice_id", id).Msg("failed to delete invoice")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete invoice"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}
