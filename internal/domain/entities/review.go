package entities

import (
	"math"
	"time"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Review representa a avaliação de um usuário para um subject.
// Cada par (usuário, subject) tem no máximo uma review ativa.
type Review struct {
	ID              string
	ReviewSubjectID string
	UserID          string
	Comment         *string
	TotalScore      float64
	Images          []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft delete

	// Populados em leituras com join
	User   *User
	Scores []*EvaluationScore
}

// EvaluationScore representa a nota dada a um critério dentro de uma review.
// Diferente das demais tabelas, scores são removidos fisicamente.
type EvaluationScore struct {
	ID          string
	ReviewID    string
	CriterionID string
	Score       int

	// Populado em leituras com join
	CriterionName string
}

// IsValidScore verifica se a nota está no intervalo [1,5]
func IsValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// ComputeTotalScore calcula a média aritmética das notas, arredondada
// para 2 casas decimais
func ComputeTotalScore(scores map[string]int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))
	return math.Round(mean*100) / 100
}
