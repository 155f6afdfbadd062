package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/repositories"
	"github.com/revibako/backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := toUserModel(user)

	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "username", "display_id", "avatar_url", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) FindByDisplayID(ctx context.Context, displayID string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("display_id = ? AND deleted_at IS NULL", displayID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) DisplayIDExists(ctx context.Context, displayID string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserModel{}).
		Where("display_id = ? AND deleted_at IS NULL", displayID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)
	model.UpdatedAt = time.Now().Unix()

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

// Conversores
func toUserModel(user *entities.User) *UserModel {
	var displayID *string
	if !user.DisplayID.IsZero() {
		v := user.DisplayID.String()
		displayID = &v
	}

	return &UserModel{
		ID:        user.ID,
		Email:     user.Email.String(),
		Username:  user.Username,
		DisplayID: displayID,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt.Unix(),
		UpdatedAt: user.UpdatedAt.Unix(),
		DeletedAt: unixPtr(user.DeletedAt),
	}
}

func toUserEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var handle valueobjects.DisplayHandle
	if model.DisplayID != nil {
		handle, err = valueobjects.NewDisplayHandle(*model.DisplayID)
		if err != nil {
			return nil, err
		}
	}

	return &entities.User{
		ID:        model.ID,
		Email:     email,
		Username:  model.Username,
		DisplayID: handle,
		AvatarURL: model.AvatarURL,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
		DeletedAt: timePtr(model.DeletedAt),
	}, nil
}
