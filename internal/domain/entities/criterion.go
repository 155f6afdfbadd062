package entities

import "time"

// EvaluationCriterion representa um critério de avaliação de um grupo.
// Critérios são fixados na criação do grupo e nunca alterados ou removidos
// individualmente; só desaparecem junto com o grupo.
type EvaluationCriterion struct {
	ID            string
	ReviewGroupID string
	Name          string
	OrderIndex    int
	CreatedAt     time.Time
	DeletedAt     *time.Time // Soft delete (apenas via cascata do grupo)
}
