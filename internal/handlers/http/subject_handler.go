package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// SubjectHandler lida com requisições HTTP de subjects de avaliação
type SubjectHandler struct {
	subjectService *services.SubjectService
}

// NewSubjectHandler cria um novo SubjectHandler
func NewSubjectHandler(subjectService *services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// CreateSubject cria um subject no grupo
//
//	@Summary		Cria um subject
//	@Tags			subjects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string				true	"ID do grupo"
//	@Param			request	body		dto.SubjectRequest	true	"Dados do subject"
//	@Success		201		{object}	dto.SubjectResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects [post]
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.SubjectInput{
		Name:     req.Name,
		Images:   req.Images,
		Metadata: req.Metadata,
	}

	subject, err := h.subjectService.CreateSubject(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubjectResponse(subject))
}

// ListSubjects lista os subjects do grupo com estatísticas
//
//	@Summary		Lista subjects do grupo
//	@Tags			subjects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId	path		string	true	"ID do grupo"
//	@Success		200		{array}		dto.SubjectSummaryResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects [get]
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	summaries, err := h.subjectService.ListSubjects(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubjectSummaryResponses(summaries))
}

// GetSubject retorna o detalhe do subject com médias por critério
//
//	@Summary		Detalhe do subject
//	@Tags			subjects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string	true	"ID do grupo"
//	@Param			subjectId	path		string	true	"ID do subject"
//	@Success		200			{object}	dto.SubjectDetailResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId} [get]
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	detail, err := h.subjectService.GetSubject(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubjectDetailResponse(detail))
}

// UpdateSubject edita o subject (owner, admin ou criador)
//
//	@Summary		Edita o subject
//	@Tags			subjects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string				true	"ID do grupo"
//	@Param			subjectId	path		string				true	"ID do subject"
//	@Param			request		body		dto.SubjectRequest	true	"Novos dados"
//	@Success		200			{object}	dto.SubjectResponse
//	@Failure		403			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId} [put]
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.SubjectInput{
		Name:     req.Name,
		Images:   req.Images,
		Metadata: req.Metadata,
	}

	subject, err := h.subjectService.UpdateSubject(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubjectResponse(subject))
}

// DeleteSubject remove o subject quando não há reviews ativas
//
//	@Summary		Remove o subject
//	@Tags			subjects
//	@Security		BearerAuth
//	@Param			groupId		path	string	true	"ID do grupo"
//	@Param			subjectId	path	string	true	"ID do subject"
//	@Success		204
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId} [delete]
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	err := h.subjectService.DeleteSubject(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
