package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/revibako/backend/internal/domain/valueobjects"
)

// User representa um usuário autenticado via OAuth
type User struct {
	ID        string
	Email     valueobjects.Email
	Username  string
	DisplayID valueobjects.DisplayHandle
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// NeedsUsername verifica se o usuário ainda precisa escolher um username
func (u *User) NeedsUsername() bool {
	return u.Username == ""
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// ValidateUsername valida o username escolhido (1 a 10 caracteres após trim)
func ValidateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if len([]rune(username)) < 1 || len([]rune(username)) > 10 {
		return "", errors.New("username must be 1-10 characters")
	}
	return username, nil
}
