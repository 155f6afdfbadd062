package dto

import (
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/services"
)

// SubjectRequest representa a criação ou edição de um subject
type SubjectRequest struct {
	Name     string         `json:"name" binding:"required"`
	Images   []string       `json:"images" binding:"omitempty,dive,url"`
	Metadata map[string]any `json:"metadata"`
}

// SubjectResponse representa um subject de avaliação
type SubjectResponse struct {
	ID        string         `json:"id"`
	GroupID   string         `json:"group_id"`
	Name      string         `json:"name"`
	Images    []string       `json:"images,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SubjectSummaryResponse representa um subject na listagem do grupo
type SubjectSummaryResponse struct {
	Subject      SubjectResponse `json:"subject"`
	ReviewCount  int             `json:"review_count"`
	AverageScore float64         `json:"average_score"`
}

// CriterionAverageResponse é a média de um critério entre as reviews do subject
type CriterionAverageResponse struct {
	CriterionID   string  `json:"criterion_id"`
	CriterionName string  `json:"criterion_name"`
	Average       float64 `json:"average"`
}

// SubjectDetailResponse representa a tela de detalhe de um subject
type SubjectDetailResponse struct {
	Subject      SubjectResponse            `json:"subject"`
	Group        *GroupResponse             `json:"group,omitempty"`
	Criteria     []CriterionResponse        `json:"criteria"`
	Role         string                     `json:"role"`
	ReviewCount  int                        `json:"review_count"`
	AverageScore float64                    `json:"average_score"`
	Breakdown    []CriterionAverageResponse `json:"breakdown"`
}

// ToSubjectResponse converte uma entidade ReviewSubject para SubjectResponse
func ToSubjectResponse(subject *entities.ReviewSubject) SubjectResponse {
	return SubjectResponse{
		ID:        subject.ID,
		GroupID:   subject.ReviewGroupID,
		Name:      subject.Name,
		Images:    subject.Images,
		Metadata:  subject.Metadata,
		CreatedBy: subject.CreatedBy,
		CreatedAt: subject.CreatedAt,
		UpdatedAt: subject.UpdatedAt,
	}
}

// ToSubjectSummaryResponses converte a listagem agregada de subjects
func ToSubjectSummaryResponses(summaries []*services.SubjectSummary) []SubjectSummaryResponse {
	responses := make([]SubjectSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = SubjectSummaryResponse{
			Subject:      ToSubjectResponse(summary.Subject),
			ReviewCount:  summary.ReviewCount,
			AverageScore: summary.AverageScore,
		}
	}
	return responses
}

// ToSubjectDetailResponse converte o detalhe agregado do subject
func ToSubjectDetailResponse(detail *services.SubjectDetail) SubjectDetailResponse {
	response := SubjectDetailResponse{
		Subject:      ToSubjectResponse(detail.Subject),
		Criteria:     ToCriterionResponses(detail.Criteria),
		Role:         string(detail.Role),
		ReviewCount:  detail.ReviewCount,
		AverageScore: detail.AverageScore,
		Breakdown:    make([]CriterionAverageResponse, len(detail.Breakdown)),
	}
	if detail.Group != nil {
		group := ToGroupResponse(detail.Group)
		response.Group = &group
	}
	for i, avg := range detail.Breakdown {
		response.Breakdown[i] = CriterionAverageResponse{
			CriterionID:   avg.CriterionID,
			CriterionName: avg.CriterionName,
			Average:       avg.Average,
		}
	}
	return response
}
