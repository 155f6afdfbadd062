package dto

import (
	"time"

	"github.com/revibako/backend/internal/services"
)

// CompleteRegistrationRequest representa a escolha de username no registro
type CompleteRegistrationRequest struct {
	Username string `json:"username" binding:"required"`
}

// LoginResponse representa a sessão emitida após o callback OAuth
type LoginResponse struct {
	Token         string       `json:"token"`
	ExpiresAt     time.Time    `json:"expires_at"`
	NeedsUsername bool         `json:"needs_username"`
	User          UserResponse `json:"user"`
}

// RegistrationStatusResponse indica se o usuário ainda precisa escolher username
type RegistrationStatusResponse struct {
	NeedsUsername bool         `json:"needs_username"`
	User          UserResponse `json:"user"`
}

// ToLoginResponse converte o resultado do login para a resposta HTTP
func ToLoginResponse(result *services.LoginResult) LoginResponse {
	return LoginResponse{
		Token:         result.Token,
		ExpiresAt:     result.ExpiresAt,
		NeedsUsername: result.NeedsUsername,
		User:          ToUserResponse(result.User),
	}
}
