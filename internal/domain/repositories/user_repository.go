package repositories

import (
	"context"

	"github.com/revibako/backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Upsert cria o usuário ou atualiza o registro existente com o mesmo ID
	Upsert(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByDisplayID(ctx context.Context, displayID string) (*entities.User, error)
	// DisplayIDExists verifica colisão de handle entre usuários ativos
	DisplayIDExists(ctx context.Context, displayID string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
}
