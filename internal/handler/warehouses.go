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

type WarehousesHandler struct{ svc service.WarehouseService }

func NewWarehousesHandler(svc service.WarehouseService) *WarehousesHandler {
	return &WarehousesHandler{svc: svc}
}

// List godoc
// @Summary      List all warehouse stock rows
// @Tags         warehouses
// @Produce      json
// @Success      200 {array} model.Warehouse
// @Router       /warehouses [get]
func (h *WarehousesHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list warehouse rows")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list warehouse"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Update godoc
// @Summary      Set the quantity of one stock row
// @Description  May enqueue a low-stock alert when the new quantity drops
// @Description  below the product minimum.
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id   path int true "Warehouse row ID"
// @Param        body body dto.UpdateWarehouseRequest true "New quantity"
// @Success      200 {object} model.Warehouse
// @Failure      404 {object} apierror.APIError
// @Router       /warehouses/{id} [put]
func (h *WarehousesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateWarehouseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	row, err := h.svc.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Warehouse row not found"))
			return
		}
		log.Error().Err(err).Int("warehouse_id", id).Msg("failed to update warehouse quantity")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update warehouse"))
		return
	}
	c.JSON(http.StatusOK, row)
}
