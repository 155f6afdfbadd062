package repositories

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// ReviewGroupRepository define a interface para grupos de avaliação e seus
// critérios (critérios são imutáveis e só existem junto com o grupo)
type ReviewGroupRepository interface {
	Create(ctx context.Context, group *entities.ReviewGroup) error
	FindByID(ctx context.Context, id string) (*entities.ReviewGroup, error)
	Update(ctx context.Context, group *entities.ReviewGroup) error
	SoftDelete(ctx context.Context, id string, at time.Time) error

	CreateCriteria(ctx context.Context, criteria []*entities.EvaluationCriterion) error
	ListCriteria(ctx context.Context, groupID string) ([]*entities.EvaluationCriterion, error)
	SoftDeleteCriteriaByGroup(ctx context.Context, groupID string, at time.Time) error
}
