package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/repositories"
)

// ReviewGroupRepository implementa repositories.ReviewGroupRepository
type ReviewGroupRepository struct {
	db *gorm.DB
}

// NewReviewGroupRepository cria um novo ReviewGroupRepository
func NewReviewGroupRepository(db *gorm.DB) repositories.ReviewGroupRepository {
	return &ReviewGroupRepository{db: db}
}

func (r *ReviewGroupRepository) Create(ctx context.Context, group *entities.ReviewGroup) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	model := toReviewGroupModel(group)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	group.ID = model.ID
	return nil
}

func (r *ReviewGroupRepository) FindByID(ctx context.Context, id string) (*entities.ReviewGroup, error) {
	var model ReviewGroupModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Category").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toReviewGroupEntity(&model), nil
}

func (r *ReviewGroupRepository) Update(ctx context.Context, group *entities.ReviewGroup) error {
	model := toReviewGroupModel(group)
	model.UpdatedAt = time.Now().Unix()

	db := dbFromContext(ctx, r.db)
	return db.Omit("Category").Save(model).Error
}

func (r *ReviewGroupRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewGroupModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at.Unix()).Error
}

func (r *ReviewGroupRepository) CreateCriteria(ctx context.Context, criteria []*entities.EvaluationCriterion) error {
	if len(criteria) == 0 {
		return nil
	}

	models := make([]*EvaluationCriterionModel, 0, len(criteria))
	for _, c := range criteria {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		models = append(models, &EvaluationCriterionModel{
			ID:            c.ID,
			ReviewGroupID: c.ReviewGroupID,
			Name:          c.Name,
			OrderIndex:    c.OrderIndex,
		})
	}

	db := dbFromContext(ctx, r.db)
	return db.Create(models).Error
}

func (r *ReviewGroupRepository) ListCriteria(ctx context.Context, groupID string) ([]*entities.EvaluationCriterion, error) {
	var models []*EvaluationCriterionModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Order("order_index ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	criteria := make([]*entities.EvaluationCriterion, 0, len(models))
	for _, model := range models {
		criteria = append(criteria, &entities.EvaluationCriterion{
			ID:            model.ID,
			ReviewGroupID: model.ReviewGroupID,
			Name:          model.Name,
			OrderIndex:    model.OrderIndex,
			CreatedAt:     time.Unix(model.CreatedAt, 0),
			DeletedAt:     timePtr(model.DeletedAt),
		})
	}
	return criteria, nil
}

func (r *ReviewGroupRepository) SoftDeleteCriteriaByGroup(ctx context.Context, groupID string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&EvaluationCriterionModel{}).
		Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Update("deleted_at", at.Unix()).Error
}

// Conversores
func toReviewGroupModel(group *entities.ReviewGroup) *ReviewGroupModel {
	var fields any
	if group.MetadataFields != nil {
		fields = group.MetadataFields
	}

	return &ReviewGroupModel{
		ID:             group.ID,
		Name:           group.Name,
		Description:    group.Description,
		CategoryID:     group.CategoryID,
		IsPrivate:      group.IsPrivate,
		ImageURL:       group.ImageURL,
		MetadataFields: toJSON(fields),
		CreatedAt:      group.CreatedAt.Unix(),
		UpdatedAt:      group.UpdatedAt.Unix(),
		DeletedAt:      unixPtr(group.DeletedAt),
	}
}

func toReviewGroupEntity(model *ReviewGroupModel) *entities.ReviewGroup {
	var fields []entities.MetadataField
	if len(model.MetadataFields) > 0 {
		_ = json.Unmarshal(model.MetadataFields, &fields)
	}

	group := &entities.ReviewGroup{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		CategoryID:     model.CategoryID,
		IsPrivate:      model.IsPrivate,
		ImageURL:       model.ImageURL,
		MetadataFields: fields,
		CreatedAt:      time.Unix(model.CreatedAt, 0),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0),
		DeletedAt:      timePtr(model.DeletedAt),
	}

	if model.Category != nil {
		group.Category = toCategoryEntity(model.Category)
	}
	return group
}
