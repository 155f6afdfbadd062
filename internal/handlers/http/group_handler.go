package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// GroupHandler lida com requisições HTTP de grupos de avaliação
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler cria um novo GroupHandler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup cria um grupo com o chamador como owner
//
//	@Summary		Cria um grupo
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateGroupRequest	true	"Dados do grupo"
//	@Success		201		{object}	dto.GroupResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/review-groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.CreateGroupInput{
		Name:           req.Name,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		IsPrivate:      req.IsPrivate,
		ImageURL:       req.ImageURL,
		MetadataFields: dto.ToMetadataFields(req.MetadataFields),
		Criteria:       req.Criteria,
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), middleware.UserIDFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// ListGroups lista os grupos dos quais o usuário é membro
//
//	@Summary		Lista grupos do usuário
//	@Tags			groups
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GroupSummaryResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/review-groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	memberships, err := h.groupService.ListGroups(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupSummaryResponses(memberships))
}

// GetGroup retorna o detalhe de um grupo
//
//	@Summary		Detalhe do grupo
//	@Tags			groups
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string	true	"ID do grupo"
//	@Success		200		{object}	dto.GroupDetailResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	detail, err := h.groupService.GetGroup(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupDetailResponse(detail))
}

// UpdateGroup atualiza as configurações do grupo (somente owner)
//
//	@Summary		Atualiza configurações do grupo
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string					true	"ID do grupo"
//	@Param			request	body		dto.UpdateGroupRequest	true	"Novas configurações"
//	@Success		200		{object}	dto.GroupResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		ImageURL:    req.ImageURL,
	}

	group, err := h.groupService.UpdateSettings(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// DeleteGroup remove o grupo e tudo que pertence a ele (somente owner)
//
//	@Summary		Remove o grupo
//	@Tags			groups
//	@Security		BearerAuth
//	@Param			groupId	path	string	true	"ID do grupo"
//	@Success		204
//	@Failure		403	{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	err := h.groupService.DeleteGroup(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
