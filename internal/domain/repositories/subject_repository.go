package repositories

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// SubjectRepository define a interface para subjects de avaliação
type SubjectRepository interface {
	Create(ctx context.Context, subject *entities.ReviewSubject) error
	// FindByID retorna o subject ativo pertencente ao grupo, ou nil
	FindByID(ctx context.Context, groupID, subjectID string) (*entities.ReviewSubject, error)
	// ListByGroup retorna os subjects ativos do grupo, mais recentes primeiro
	ListByGroup(ctx context.Context, groupID string) ([]*entities.ReviewSubject, error)
	// ListIDsByGroup inclui subjects já deletados (necessário na cascata do grupo)
	ListIDsByGroup(ctx context.Context, groupID string) ([]string, error)
	Update(ctx context.Context, subject *entities.ReviewSubject) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	SoftDeleteByGroup(ctx context.Context, groupID string, at time.Time) error
}
