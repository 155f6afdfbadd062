package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/services"
)

// CategoryHandler expõe a taxonomia fixa de categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lista as categorias disponíveis
//
//	@Summary		Lista categorias
//	@Tags			categories
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CategoryResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
