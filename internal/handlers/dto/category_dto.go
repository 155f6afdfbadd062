package dto

import (
	"github.com/revibako/backend/internal/domain/entities"
)

// CategoryResponse representa uma categoria da taxonomia de grupos
type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	OrderIndex int    `json:"order_index"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		Name:       category.Name,
		Icon:       category.Icon,
		OrderIndex: category.OrderIndex,
	}
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
