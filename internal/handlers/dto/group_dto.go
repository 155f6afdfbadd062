package dto

import (
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/services"
)

// MetadataFieldDTO descreve um campo do schema de metadados do grupo
type MetadataFieldDTO struct {
	Key      string   `json:"key" binding:"required"`
	Label    string   `json:"label" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// CreateGroupRequest representa a requisição para criar um grupo
type CreateGroupRequest struct {
	Name           string             `json:"name" binding:"required"`
	Description    *string            `json:"description"`
	CategoryID     string             `json:"category_id" binding:"required"`
	IsPrivate      bool               `json:"is_private"`
	ImageURL       *string            `json:"image_url" binding:"omitempty,url"`
	MetadataFields []MetadataFieldDTO `json:"metadata_fields"`
	Criteria       []string           `json:"criteria" binding:"required,min=1"`
}

// UpdateGroupRequest representa a atualização das configurações do grupo.
// Somente nome, descrição, privacidade e imagem são alteráveis: critérios,
// categoria e schema de metadados ficam como foram criados.
type UpdateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsPrivate   bool    `json:"is_private"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

// GroupResponse representa a resposta de um grupo
type GroupResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    *string            `json:"description,omitempty"`
	CategoryID     string             `json:"category_id"`
	Category       *CategoryResponse  `json:"category,omitempty"`
	IsPrivate      bool               `json:"is_private"`
	ImageURL       *string            `json:"image_url,omitempty"`
	MetadataFields []MetadataFieldDTO `json:"metadata_fields,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// GroupSummaryResponse representa um grupo na listagem do usuário
type GroupSummaryResponse struct {
	Group    GroupResponse `json:"group"`
	Role     string        `json:"role"`
	JoinedAt time.Time     `json:"joined_at"`
}

// CriterionResponse representa um critério de avaliação do grupo
type CriterionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
}

// GroupDetailResponse representa a tela de detalhe de um grupo
type GroupDetailResponse struct {
	Group       GroupResponse       `json:"group"`
	MemberCount int64               `json:"member_count"`
	Role        string              `json:"role"`
	Criteria    []CriterionResponse `json:"criteria"`
}

// ToMetadataFields converte os DTOs do schema de metadados para entidades
func ToMetadataFields(fields []MetadataFieldDTO) []entities.MetadataField {
	if len(fields) == 0 {
		return nil
	}
	result := make([]entities.MetadataField, len(fields))
	for i, field := range fields {
		result[i] = entities.MetadataField{
			Key:      field.Key,
			Label:    field.Label,
			Type:     field.Type,
			Options:  field.Options,
			Required: field.Required,
		}
	}
	return result
}

func toMetadataFieldDTOs(fields []entities.MetadataField) []MetadataFieldDTO {
	if len(fields) == 0 {
		return nil
	}
	result := make([]MetadataFieldDTO, len(fields))
	for i, field := range fields {
		result[i] = MetadataFieldDTO{
			Key:      field.Key,
			Label:    field.Label,
			Type:     field.Type,
			Options:  field.Options,
			Required: field.Required,
		}
	}
	return result
}

// ToGroupResponse converte uma entidade ReviewGroup para GroupResponse
func ToGroupResponse(group *entities.ReviewGroup) GroupResponse {
	response := GroupResponse{
		ID:             group.ID,
		Name:           group.Name,
		Description:    group.Description,
		CategoryID:     group.CategoryID,
		IsPrivate:      group.IsPrivate,
		ImageURL:       group.ImageURL,
		MetadataFields: toMetadataFieldDTOs(group.MetadataFields),
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      group.UpdatedAt,
	}
	if group.Category != nil {
		category := ToCategoryResponse(group.Category)
		response.Category = &category
	}
	return response
}

// ToGroupSummaryResponses converte os vínculos do usuário para a listagem
// de grupos
func ToGroupSummaryResponses(memberships []*entities.Membership) []GroupSummaryResponse {
	responses := make([]GroupSummaryResponse, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Group == nil {
			continue
		}
		responses = append(responses, GroupSummaryResponse{
			Group:    ToGroupResponse(membership.Group),
			Role:     string(membership.Role),
			JoinedAt: membership.JoinedAt,
		})
	}
	return responses
}

// ToCriterionResponses converte os critérios do grupo
func ToCriterionResponses(criteria []*entities.EvaluationCriterion) []CriterionResponse {
	responses := make([]CriterionResponse, len(criteria))
	for i, criterion := range criteria {
		responses[i] = CriterionResponse{
			ID:         criterion.ID,
			Name:       criterion.Name,
			OrderIndex: criterion.OrderIndex,
		}
	}
	return responses
}

// ToGroupDetailResponse converte o detalhe agregado do grupo
func ToGroupDetailResponse(detail *services.GroupDetail) GroupDetailResponse {
	return GroupDetailResponse{
		Group:       ToGroupResponse(detail.Group),
		MemberCount: detail.MemberCount,
		Role:        string(detail.Role),
		Criteria:    ToCriterionResponses(detail.Criteria),
	}
}
