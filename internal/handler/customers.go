package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kral14/mobilsayt/internal/apierror"
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type CustomersHandler struct{ repo repository.CustomerRepository }

func NewCustomersHandler(repo repository.CustomerRepository) *CustomersHandler {
	return &CustomersHandler{repo: repo}
}

// List godoc
// @Summary      List customers with their folder
// @Tags         customers
// @Produce      json
// @Param        type query string false "BUYER or SUPPLIER"
// @Success      200 {array} dto.CustomerWithFolder
// @Router       /customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	var filter dto.CustomerFilter
	if !bindQuery(c, &filter) {
		return
	}
	rows, err := h.repo.ListRows(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list customers")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list customers"))
		return
	}
	c.JSON(http.StatusOK, mapper.Customers(rows))
}

// Create godoc
// @Summary      Create a customer or supplier
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateCustomerRequest true "Customer payload"
// @Success      201 {object} model.Customer
// @Router       /customers [post]
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	customer := model.Customer{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		Balance:           req.Balance,
		FolderID:          req.FolderID,
		Code:              req.Code,
		IsActive:          req.IsActive,
		Type:              req.Type,
		PermanentDiscount: req.PermanentDiscount,
	}
	if err := h.repo.Create(c.Request.Context(), &customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create customer"))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Delete godoc
// @Summary      Delete a customer
// @Tags         customers
// @Param        id path int true "Customer ID"
// @Success      204
// @Router       /customers/{id} [delete]
func (h *CustomersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to delete customer")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete customer"))
		return
	}
	c.Status(http.StatusNoContent)
}
