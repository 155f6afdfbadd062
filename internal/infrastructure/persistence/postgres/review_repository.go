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

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	model := toReviewModel(review)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	review.ID = model.ID
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	model := toReviewModel(review)
	model.UpdatedAt = time.Now().Unix()

	db := dbFromContext(ctx, r.db)
	return db.Omit("User").Save(model).Error
}

func (r *ReviewRepository) FindActive(ctx context.Context, subjectID, userID string) (*entities.Review, error) {
	var model ReviewModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("review_subject_id = ? AND user_id = ? AND deleted_at IS NULL", subjectID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toReviewEntity(&model)
}

func (r *ReviewRepository) ListBySubject(ctx context.Context, subjectID string) ([]*entities.Review, error) {
	var models []*ReviewModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("User").
		Where("review_subject_id = ? AND deleted_at IS NULL", subjectID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		review, err := toReviewEntity(model)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *ReviewRepository) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ReviewModel{}).
		Where("review_subject_id = ? AND deleted_at IS NULL", subjectID).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepository) ListActiveIDsBySubjects(ctx context.Context, subjectIDs []string) ([]string, error) {
	if len(subjectIDs) == 0 {
		return nil, nil
	}

	var ids []string
	db := dbFromContext(ctx, r.db)
	err := db.Model(&ReviewModel{}).
		Where("review_subject_id IN ? AND deleted_at IS NULL", subjectIDs).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *ReviewRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at.Unix()).Error
}

func (r *ReviewRepository) SoftDeleteByIDs(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewModel{}).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Update("deleted_at", at.Unix()).Error
}

func (r *ReviewRepository) CreateScores(ctx context.Context, scores []*entities.EvaluationScore) error {
	if len(scores) == 0 {
		return nil
	}

	models := make([]*EvaluationScoreModel, 0, len(scores))
	for _, s := range scores {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		models = append(models, &EvaluationScoreModel{
			ID:          s.ID,
			ReviewID:    s.ReviewID,
			CriterionID: s.CriterionID,
			Score:       s.Score,
		})
	}

	db := dbFromContext(ctx, r.db)
	return db.Create(models).Error
}

func (r *ReviewRepository) ListScores(ctx context.Context, reviewID string) ([]*entities.EvaluationScore, error) {
	return r.listScores(ctx, []string{reviewID})
}

func (r *ReviewRepository) ListScoresByReviews(ctx context.Context, reviewIDs []string) ([]*entities.EvaluationScore, error) {
	if len(reviewIDs) == 0 {
		return nil, nil
	}
	return r.listScores(ctx, reviewIDs)
}

func (r *ReviewRepository) listScores(ctx context.Context, reviewIDs []string) ([]*entities.EvaluationScore, error) {
	var models []*EvaluationScoreModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Criterion").
		Where("review_id IN ?", reviewIDs).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	scores := make([]*entities.EvaluationScore, 0, len(models))
	for _, model := range models {
		score := &entities.EvaluationScore{
			ID:          model.ID,
			ReviewID:    model.ReviewID,
			CriterionID: model.CriterionID,
			Score:       model.Score,
		}
		if model.Criterion != nil {
			score.CriterionName = model.Criterion.Name
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func (r *ReviewRepository) DeleteScores(ctx context.Context, reviewID string) error {
	db := dbFromContext(ctx, r.db)
	// Hard delete: scores não têm deleted_at
	return db.Where("review_id = ?", reviewID).Delete(&EvaluationScoreModel{}).Error
}

func (r *ReviewRepository) DeleteScoresByReviews(ctx context.Context, reviewIDs []string) error {
	if len(reviewIDs) == 0 {
		return nil
	}

	db := dbFromContext(ctx, r.db)
	return db.Where("review_id IN ?", reviewIDs).Delete(&EvaluationScoreModel{}).Error
}

// Conversores
func toReviewModel(review *entities.Review) *ReviewModel {
	var images any
	if review.Images != nil {
		images = review.Images
	}

	return &ReviewModel{
		ID:              review.ID,
		ReviewSubjectID: review.ReviewSubjectID,
		UserID:          review.UserID,
		Comment:         review.Comment,
		TotalScore:      review.TotalScore,
		Images:          toJSON(images),
		CreatedAt:       review.CreatedAt.Unix(),
		UpdatedAt:       review.UpdatedAt.Unix(),
		DeletedAt:       unixPtr(review.DeletedAt),
	}
}

func toReviewEntity(model *ReviewModel) (*entities.Review, error) {
	review := &entities.Review{
		ID:              model.ID,
		ReviewSubjectID: model.ReviewSubjectID,
		UserID:          model.UserID,
		Comment:         model.Comment,
		TotalScore:      model.TotalScore,
		Images:          stringsFromJSON(model.Images),
		CreatedAt:       time.Unix(model.CreatedAt, 0),
		UpdatedAt:       time.Unix(model.UpdatedAt, 0),
		DeletedAt:       timePtr(model.DeletedAt),
	}

	if model.User != nil {
		user, err := toUserEntity(model.User)
		if err != nil {
			return nil, err
		}
		review.User = user
	}
	return review, nil
}
