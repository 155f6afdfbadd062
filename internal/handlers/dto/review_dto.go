package dto

import (
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// ReviewRequest representa a criação ou edição de uma review.
// Scores mapeia o ID do critério para a nota (1 a 5).
type ReviewRequest struct {
	Comment *string        `json:"comment"`
	Images  []string       `json:"images" binding:"omitempty,dive,url"`
	Scores  map[string]int `json:"scores" binding:"required"`
}

// ScoreResponse representa a nota de um critério dentro de uma review
type ScoreResponse struct {
	CriterionID   string `json:"criterion_id"`
	CriterionName string `json:"criterion_name,omitempty"`
	Score         int    `json:"score"`
}

// ReviewResponse representa uma review com autor e scores
type ReviewResponse struct {
	ID         string          `json:"id"`
	SubjectID  string          `json:"subject_id"`
	UserID     string          `json:"user_id"`
	Username   string          `json:"username,omitempty"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
	Comment    *string         `json:"comment,omitempty"`
	TotalScore float64         `json:"total_score"`
	Images     []string        `json:"images,omitempty"`
	Scores     []ScoreResponse `json:"scores"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	response := ReviewResponse{
		ID:         review.ID,
		SubjectID:  review.ReviewSubjectID,
		UserID:     review.UserID,
		Comment:    review.Comment,
		TotalScore: review.TotalScore,
		Images:     review.Images,
		Scores:     make([]ScoreResponse, len(review.Scores)),
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
	if review.User != nil {
		response.Username = review.User.Username
		response.AvatarURL = review.User.AvatarURL
	}
	for i, score := range review.Scores {
		response.Scores[i] = ScoreResponse{
			CriterionID:   score.CriterionID,
			CriterionName: score.CriterionName,
			Score:         score.Score,
		}
	}
	return response
}

// ToReviewResponses converte uma lista de reviews
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}
