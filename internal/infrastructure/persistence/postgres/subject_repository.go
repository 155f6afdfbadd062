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

// SubjectRepository implementa repositories.SubjectRepository
type SubjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository cria um novo SubjectRepository
func NewSubjectRepository(db *gorm.DB) repositories.SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) Create(ctx context.Context, subject *entities.ReviewSubject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	model := toSubjectModel(subject)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	subject.ID = model.ID
	return nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, groupID, subjectID string) (*entities.ReviewSubject, error) {
	var model ReviewSubjectModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("id = ? AND review_group_id = ? AND deleted_at IS NULL", subjectID, groupID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toSubjectEntity(&model), nil
}

func (r *SubjectRepository) ListByGroup(ctx context.Context, groupID string) ([]*entities.ReviewSubject, error) {
	var models []*ReviewSubjectModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	subjects := make([]*entities.ReviewSubject, 0, len(models))
	for _, model := range models {
		subjects = append(subjects, toSubjectEntity(model))
	}
	return subjects, nil
}

func (r *SubjectRepository) ListIDsByGroup(ctx context.Context, groupID string) ([]string, error) {
	var ids []string

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ReviewSubjectModel{}).
		Where("review_group_id = ?", groupID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *SubjectRepository) Update(ctx context.Context, subject *entities.ReviewSubject) error {
	model := toSubjectModel(subject)
	model.UpdatedAt = time.Now().Unix()

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *SubjectRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewSubjectModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at.Unix()).Error
}

func (r *SubjectRepository) SoftDeleteByGroup(ctx context.Context, groupID string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewSubjectModel{}).
		Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Update("deleted_at", at.Unix()).Error
}

// Conversores
func toSubjectModel(subject *entities.ReviewSubject) *ReviewSubjectModel {
	var images any
	if subject.Images != nil {
		images = subject.Images
	}
	var metadata any
	if subject.Metadata != nil {
		metadata = subject.Metadata
	}

	return &ReviewSubjectModel{
		ID:            subject.ID,
		ReviewGroupID: subject.ReviewGroupID,
		Name:          subject.Name,
		Images:        toJSON(images),
		Metadata:      toJSON(metadata),
		CreatedBy:     subject.CreatedBy,
		CreatedAt:     subject.CreatedAt.Unix(),
		UpdatedAt:     subject.UpdatedAt.Unix(),
		DeletedAt:     unixPtr(subject.DeletedAt),
	}
}

func toSubjectEntity(model *ReviewSubjectModel) *entities.ReviewSubject {
	return &entities.ReviewSubject{
		ID:            model.ID,
		ReviewGroupID: model.ReviewGroupID,
		Name:          model.Name,
		Images:        stringsFromJSON(model.Images),
		Metadata:      mapFromJSON(model.Metadata),
		CreatedBy:     model.CreatedBy,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
		DeletedAt:     timePtr(model.DeletedAt),
	}
}
