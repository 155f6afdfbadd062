package repositories

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// ReviewRepository define a interface para reviews e seus scores.
// Scores não têm soft delete: são sempre removidos fisicamente.
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	Update(ctx context.Context, review *entities.Review) error
	// FindActive retorna a review ativa do usuário para o subject, ou nil
	FindActive(ctx context.Context, subjectID, userID string) (*entities.Review, error)
	// ListBySubject retorna reviews ativas com autor populado, mais recentes primeiro
	ListBySubject(ctx context.Context, subjectID string) ([]*entities.Review, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
	// ListActiveIDsBySubjects retorna IDs de reviews ativas dos subjects dados
	ListActiveIDsBySubjects(ctx context.Context, subjectIDs []string) ([]string, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	SoftDeleteByIDs(ctx context.Context, ids []string, at time.Time) error

	CreateScores(ctx context.Context, scores []*entities.EvaluationScore) error
	// ListScores retorna os scores da review com o nome do critério populado
	ListScores(ctx context.Context, reviewID string) ([]*entities.EvaluationScore, error)
	// ListScoresByReviews retorna os scores de várias reviews de uma vez
	ListScoresByReviews(ctx context.Context, reviewIDs []string) ([]*entities.EvaluationScore, error)
	DeleteScores(ctx context.Context, reviewID string) error
	DeleteScoresByReviews(ctx context.Context, reviewIDs []string) error
}
