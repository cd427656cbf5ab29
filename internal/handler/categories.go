package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kral14/mobilsayt/internal/apierror"
	"github.com/kral14/mobilsayt/internal/repository"
)

type CategoriesHandler struct{ repo repository.CategoryRepository }

func NewCategoriesHandler(repo repository.CategoryRepository) *CategoriesHandler {
	return &CategoriesHandler{repo: repo}
}

// List godoc
// @Summary      List all categories sorted by name
// @Tags         categories
// @Produce      json
// @Success      200 {array} model.Category
// @Router       /categories [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	categories, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list categories"))
		return
	}
	c.JSON(http.StatusOK, categories)
}
