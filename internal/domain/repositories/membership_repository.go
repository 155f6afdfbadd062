package repositories

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// MembershipRepository define a interface para vínculos usuário/grupo
type MembershipRepository interface {
	Create(ctx context.Context, membership *entities.Membership) error
	// FindActive retorna o vínculo ativo do usuário no grupo, ou nil
	FindActive(ctx context.Context, groupID, userID string) (*entities.Membership, error)
	// ListByGroup retorna os membros ativos com o usuário populado,
	// ordenados por entrada mais antiga primeiro
	ListByGroup(ctx context.Context, groupID string) ([]*entities.Membership, error)
	// ListByUser retorna os vínculos ativos do usuário com grupo e
	// categoria populados, ordenados por entrada mais recente primeiro
	ListByUser(ctx context.Context, userID string) ([]*entities.Membership, error)
	CountByGroup(ctx context.Context, groupID string) (int64, error)
	SoftDeleteByGroup(ctx context.Context, groupID string, at time.Time) error
}
