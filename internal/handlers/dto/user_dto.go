package dto

import (
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// UpdateProfileRequest representa a atualização de perfil do usuário
type UpdateProfileRequest struct {
	Username  *string `json:"username" binding:"omitempty"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	DisplayID string    `json:"display_id,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Username:  user.Username,
		DisplayID: user.DisplayID.String(),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
