package dto

import (
	"time"

	"github.com/revibako/backend/internal/domain/entities"
)

// InviteMemberRequest representa o convite de um usuário pelo display handle
type InviteMemberRequest struct {
	DisplayID string `json:"display_id" binding:"required"`
}

// MemberResponse representa um membro do grupo
type MemberResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	DisplayID string    `json:"display_id,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

// InvitationResponse representa um convite pendente
type InvitationResponse struct {
	ID          string         `json:"id"`
	Group       *GroupResponse `json:"group,omitempty"`
	InviterName string         `json:"inviter_name,omitempty"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ToMemberResponses converte os vínculos do grupo para a listagem de membros
func ToMemberResponses(memberships []*entities.Membership) []MemberResponse {
	responses := make([]MemberResponse, 0, len(memberships))
	for _, membership := range memberships {
		if membership.User == nil {
			continue
		}
		responses = append(responses, MemberResponse{
			UserID:    membership.UserID,
			Username:  membership.User.Username,
			DisplayID: membership.User.DisplayID.String(),
			AvatarURL: membership.User.AvatarURL,
			Role:      string(membership.Role),
			JoinedAt:  membership.JoinedAt,
		})
	}
	return responses
}

// ToInvitationResponse converte uma entidade Invitation para InvitationResponse
func ToInvitationResponse(invitation *entities.Invitation) InvitationResponse {
	response := InvitationResponse{
		ID:        invitation.ID,
		Status:    string(invitation.Status),
		CreatedAt: invitation.CreatedAt,
	}
	if invitation.Group != nil {
		group := ToGroupResponse(invitation.Group)
		response.Group = &group
	}
	if invitation.Inviter != nil {
		response.InviterName = invitation.Inviter.Username
	}
	return response
}

// ToInvitationResponses converte uma lista de convites
func ToInvitationResponses(invitations []*entities.Invitation) []InvitationResponse {
	responses := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		responses[i] = ToInvitationResponse(invitation)
	}
	return responses
}
