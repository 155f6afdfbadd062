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

// MembershipRepository implementa repositories.MembershipRepository
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository cria um novo MembershipRepository
func NewMembershipRepository(db *gorm.DB) repositories.MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *entities.Membership) error {
	if membership.ID == "" {
		membership.ID = uuid.NewString()
	}
	model := &MembershipModel{
		ID:            membership.ID,
		ReviewGroupID: membership.ReviewGroupID,
		UserID:        membership.UserID,
		Role:          string(membership.Role),
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	membership.JoinedAt = time.Unix(model.JoinedAt, 0)
	return nil
}

func (r *MembershipRepository) FindActive(ctx context.Context, groupID, userID string) (*entities.Membership, error) {
	var model MembershipModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("review_group_id = ? AND user_id = ? AND deleted_at IS NULL", groupID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMembershipEntity(&model)
}

func (r *MembershipRepository) ListByGroup(ctx context.Context, groupID string) ([]*entities.Membership, error) {
	var models []*MembershipModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("User").
		Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Order("joined_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toMembershipEntities(models)
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Membership, error) {
	var models []*MembershipModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Group.Category").
		Joins("JOIN review_groups ON review_groups.id = review_group_members.review_group_id AND review_groups.deleted_at IS NULL").
		Where("review_group_members.user_id = ? AND review_group_members.deleted_at IS NULL", userID).
		Order("review_group_members.joined_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toMembershipEntities(models)
}

func (r *MembershipRepository) CountByGroup(ctx context.Context, groupID string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&MembershipModel{}).
		Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Count(&count).Error
	return count, err
}

func (r *MembershipRepository) SoftDeleteByGroup(ctx context.Context, groupID string, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&MembershipModel{}).
		Where("review_group_id = ? AND deleted_at IS NULL", groupID).
		Update("deleted_at", at.Unix()).Error
}

// Conversores
func toMembershipEntity(model *MembershipModel) (*entities.Membership, error) {
	membership := &entities.Membership{
		ID:            model.ID,
		ReviewGroupID: model.ReviewGroupID,
		UserID:        model.UserID,
		Role:          entities.Role(model.Role),
		JoinedAt:      time.Unix(model.JoinedAt, 0),
		DeletedAt:     timePtr(model.DeletedAt),
	}

	if model.User != nil {
		user, err := toUserEntity(model.User)
		if err != nil {
			return nil, err
		}
		membership.User = user
	}
	if model.Group != nil {
		membership.Group = toReviewGroupEntity(model.Group)
	}
	return membership, nil
}

func toMembershipEntities(models []*MembershipModel) ([]*entities.Membership, error) {
	memberships := make([]*entities.Membership, 0, len(models))
	for _, model := range models {
		membership, err := toMembershipEntity(model)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, nil
}
