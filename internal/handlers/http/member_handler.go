package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// MemberHandler lida com membros e convites de grupos
type MemberHandler struct {
	membershipService *services.MembershipService
}

// NewMemberHandler cria um novo MemberHandler
func NewMemberHandler(membershipService *services.MembershipService) *MemberHandler {
	return &MemberHandler{membershipService: membershipService}
}

// ListMembers lista os membros do grupo (somente membros)
//
//	@Summary		Lista membros do grupo
//	@Tags			members
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string	true	"ID do grupo"
//	@Success		200		{array}		dto.MemberResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	memberships, err := h.membershipService.ListMembers(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponses(memberships))
}

// InviteMember convida um usuário pelo display handle
//
//	@Summary		Convida um usuário
//	@Tags			members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string					true	"ID do grupo"
//	@Param			request	body		dto.InviteMemberRequest	true	"Display handle do convidado"
//	@Success		201		{object}	dto.InvitationResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/members/invite [post]
func (h *MemberHandler) InviteMember(c *gin.Context) {
	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invitation, err := h.membershipService.Invite(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), req.DisplayID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(invitation))
}

// ListInvitations lista os convites pendentes do usuário autenticado
//
//	@Summary		Lista convites pendentes
//	@Tags			invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.InvitationResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/invitations [get]
func (h *MemberHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.membershipService.ListMyInvitations(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponses(invitations))
}

// AcceptInvitation aceita um convite pendente
//
//	@Summary		Aceita um convite
//	@Tags			invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			invitationId	path	string	true	"ID do convite"
//	@Success		204
//	@Failure		409	{object}	dto.ErrorResponse
//	@Router			/invitations/{invitationId}/accept [post]
func (h *MemberHandler) AcceptInvitation(c *gin.Context) {
	_, err := h.membershipService.AcceptInvitation(c.Request.Context(), middleware.UserIDFrom(c), c.Param("invitationId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeclineInvitation recusa um convite pendente
//
//	@Summary		Recusa um convite
//	@Tags			invitations
//	@Security		BearerAuth
//	@Param			invitationId	path	string	true	"ID do convite"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/invitations/{invitationId}/decline [post]
func (h *MemberHandler) DeclineInvitation(c *gin.Context) {
	err := h.membershipService.DeclineInvitation(c.Request.Context(), middleware.UserIDFrom(c), c.Param("invitationId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
