package services

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
)

// CategoryService expõe a taxonomia fixa de categorias de grupo
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(categoryRepo repositories.CategoryRepository, logger ports.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories retorna todas as categorias ordenadas
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategory busca uma categoria por ID
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrInvalidCategory
	}
	return category, nil
}

// SeedDefaults insere a taxonomia padrão quando a tabela está vazia
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaults := []*entities.Category{
		{Name: "ドラマ", Icon: "🎭", OrderIndex: 1, CreatedAt: now, UpdatedAt: now},
		{Name: "映画", Icon: "🎬", OrderIndex: 2, CreatedAt: now, UpdatedAt: now},
		{Name: "アニメ", Icon: "📺", OrderIndex: 3, CreatedAt: now, UpdatedAt: now},
		{Name: "本", Icon: "📚", OrderIndex: 4, CreatedAt: now, UpdatedAt: now},
		{Name: "音楽", Icon: "🎵", OrderIndex: 5, CreatedAt: now, UpdatedAt: now},
		{Name: "レストラン", Icon: "🍽️", OrderIndex: 6, CreatedAt: now, UpdatedAt: now},
		{Name: "その他", Icon: "📦", OrderIndex: 7, CreatedAt: now, UpdatedAt: now},
	}

	if err := s.categoryRepo.Seed(ctx, defaults); err != nil {
		return err
	}

	s.logger.Info("default categories seeded", "count", len(defaults))
	return nil
}
