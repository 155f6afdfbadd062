package repositories

import (
	"context"

	"github.com/revibako/backend/internal/domain/entities"
)

// InvitationRepository define a interface para convites de grupo
type InvitationRepository interface {
	Create(ctx context.Context, invitation *entities.Invitation) error
	FindByID(ctx context.Context, id string) (*entities.Invitation, error)
	// FindPending retorna o convite pendente do handle para o grupo, ou nil
	FindPending(ctx context.Context, groupID, displayID string) (*entities.Invitation, error)
	// ListPendingByDisplayID retorna os convites pendentes do handle com
	// grupo e convidante populados, mais recentes primeiro
	ListPendingByDisplayID(ctx context.Context, displayID string) ([]*entities.Invitation, error)
	Update(ctx context.Context, invitation *entities.Invitation) error
}
