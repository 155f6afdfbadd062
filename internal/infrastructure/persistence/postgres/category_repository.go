package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("deleted_at IS NULL").
		Order("order_index ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, toCategoryEntity(model))
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	var model CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCategoryEntity(&model), nil
}

func (r *CategoryRepository) Seed(ctx context.Context, categories []*entities.Category) error {
	models := make([]*CategoryModel, 0, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		models = append(models, &CategoryModel{
			ID:         c.ID,
			Name:       c.Name,
			Icon:       c.Icon,
			OrderIndex: c.OrderIndex,
		})
	}

	db := dbFromContext(ctx, r.db)
	return db.Create(models).Error
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&CategoryModel{}).Where("deleted_at IS NULL").Count(&count).Error
	return count, err
}

func toCategoryEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:         model.ID,
		Name:       model.Name,
		Icon:       model.Icon,
		OrderIndex: model.OrderIndex,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
		DeletedAt:  timePtr(model.DeletedAt),
	}
}
