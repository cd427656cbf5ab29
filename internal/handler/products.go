package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/apierror"
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List godoc
// @Summary      List products with warehouse stock and category
// @Tags         products
// @Produce      json
// @Param        page        query int    false "Page number" default(1)
// @Param        limit       query int    false "Page size"   default(50)
// @Param        search      query string false "Name / code / barcode search"
// @Param        category_id query int    false "Category filter"
// @Param        ids         query string false "Comma-separated product IDs"
// @Success      200 {array} dto.ProductWithRelations
// @Router       /products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQuery(c, &filter) {
		return
	}
	products, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list products"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary      Fetch one product with stock and category
// @Tags         products
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {object} dto.ProductWithRelations
// @Failure      404 {object} apierror.APIError
// @Router       /products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Discounts godoc
// @Summary      Active discounts for a product
// @Description  Degrades to an empty list on storage errors — the price
// @Description  calculator treats missing discounts as zero.
// @Tags         products
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {array} model.ProductDiscount
// @Router       /products/{id}/discounts [get]
func (h *ProductsHandler) Discounts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	discounts, err := h.svc.Discounts(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Int("product_id", id).Msg("failed to fetch product discounts")
		discounts = []model.ProductDiscount{}
	}
	if discounts == nil {
		discounts = []model.ProductDiscount{}
	}
	c.JSON(http.StatusOK, discounts)
}

// Export godoc
// @Summary      Export the filtered product list as XLSX
// @Tags         products
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /products/export [get]
func (h *ProductsHandler) Export(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQuery(c, &filter) {
		return
	}
	f, err := h.svc.Export(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to export products")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to export products"))
		return
	}

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to stream product export")
	}
}
