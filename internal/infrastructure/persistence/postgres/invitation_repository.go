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

// InvitationRepository implementa repositories.InvitationRepository
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository cria um novo InvitationRepository
func NewInvitationRepository(db *gorm.DB) repositories.InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	if invitation.ID == "" {
		invitation.ID = uuid.NewString()
	}
	if invitation.Status == "" {
		invitation.Status = entities.InvitationPending
	}
	model := toInvitationModel(invitation)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	invitation.ID = model.ID
	invitation.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id string) (*entities.Invitation, error) {
	var model InvitationModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Group").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toInvitationEntity(&model)
}

func (r *InvitationRepository) FindPending(ctx context.Context, groupID, displayID string) (*entities.Invitation, error) {
	var model InvitationModel

	db := dbFromContext(ctx, r.db)
	err := db.Where(
		"review_group_id = ? AND invited_user_display_id = ? AND status = ? AND deleted_at IS NULL",
		groupID, displayID, string(entities.InvitationPending),
	).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toInvitationEntity(&model)
}

func (r *InvitationRepository) ListPendingByDisplayID(ctx context.Context, displayID string) ([]*entities.Invitation, error) {
	var models []*InvitationModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Group").Preload("Inviter").
		Where("invited_user_display_id = ? AND status = ? AND deleted_at IS NULL",
			displayID, string(entities.InvitationPending)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	invitations := make([]*entities.Invitation, 0, len(models))
	for _, model := range models {
		invitation, err := toInvitationEntity(model)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, invitation)
	}
	return invitations, nil
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *entities.Invitation) error {
	model := toInvitationModel(invitation)
	model.UpdatedAt = time.Now().Unix()

	db := dbFromContext(ctx, r.db)
	return db.Omit("Group", "Inviter").Save(model).Error
}

// Conversores
func toInvitationModel(invitation *entities.Invitation) *InvitationModel {
	return &InvitationModel{
		ID:                   invitation.ID,
		ReviewGroupID:        invitation.ReviewGroupID,
		InviterID:            invitation.InviterID,
		InvitedUserDisplayID: invitation.InvitedUserDisplayID,
		Status:               string(invitation.Status),
		CreatedAt:            invitation.CreatedAt.Unix(),
		UpdatedAt:            invitation.UpdatedAt.Unix(),
		DeletedAt:            unixPtr(invitation.DeletedAt),
	}
}

func toInvitationEntity(model *InvitationModel) (*entities.Invitation, error) {
	invitation := &entities.Invitation{
		ID:                   model.ID,
		ReviewGroupID:        model.ReviewGroupID,
		InviterID:            model.InviterID,
		InvitedUserDisplayID: model.InvitedUserDisplayID,
		Status:               entities.InvitationStatus(model.Status),
		CreatedAt:            time.Unix(model.CreatedAt, 0),
		UpdatedAt:            time.Unix(model.UpdatedAt, 0),
		DeletedAt:            timePtr(model.DeletedAt),
	}

	if model.Group != nil {
		invitation.Group = toReviewGroupEntity(model.Group)
	}
	if model.Inviter != nil {
		inviter, err := toUserEntity(model.Inviter)
		if err != nil {
			return nil, err
		}
		invitation.Inviter = inviter
	}
	return invitation, nil
}
