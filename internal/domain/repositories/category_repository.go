package repositories

import (
	"context"

	"github.com/revibako/backend/internal/domain/entities"
)

// CategoryRepository define a interface para a taxonomia fixa de categorias
type CategoryRepository interface {
	List(ctx context.Context) ([]*entities.Category, error)
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	// Seed insere as categorias padrão quando a tabela está vazia
	Seed(ctx context.Context, categories []*entities.Category) error
	Count(ctx context.Context) (int64, error)
}
