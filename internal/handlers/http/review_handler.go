package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// ReviewHandler lida com requisições HTTP de reviews
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews lista as reviews do subject
//
//	@Summary		Lista reviews do subject
//	@Tags			reviews
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string	true	"ID do grupo"
//	@Param			subjectId	path		string	true	"ID do subject"
//	@Success		200			{array}		dto.ReviewResponse
//	@Failure		403			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

// GetMyReview retorna a review do usuário autenticado para o subject
//
//	@Summary		Review do usuário para o subject
//	@Tags			reviews
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string	true	"ID do grupo"
//	@Param			subjectId	path		string	true	"ID do subject"
//	@Success		200			{object}	dto.ReviewResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId}/reviews/me [get]
func (h *ReviewHandler) GetMyReview(c *gin.Context) {
	review, err := h.reviewService.GetMyReview(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// CreateReview cria a review do usuário para o subject
//
//	@Summary		Cria uma review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string				true	"ID do grupo"
//	@Param			subjectId	path		string				true	"ID do subject"
//	@Param			request		body		dto.ReviewRequest	true	"Comentário, imagens e notas"
//	@Success		201			{object}	dto.ReviewResponse
//	@Failure		409			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.ReviewInput{
		Comment: req.Comment,
		Images:  req.Images,
		Scores:  req.Scores,
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// UpdateReview edita a review do próprio usuário
//
//	@Summary		Edita a review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			groupId		path		string				true	"ID do grupo"
//	@Param			subjectId	path		string				true	"ID do subject"
//	@Param			request		body		dto.ReviewRequest	true	"Novos dados"
//	@Success		200			{object}	dto.ReviewResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId}/reviews [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.ReviewInput{
		Comment: req.Comment,
		Images:  req.Images,
		Scores:  req.Scores,
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// DeleteReview remove a review do próprio usuário
//
//	@Summary		Remove a review
//	@Tags			reviews
//	@Security		BearerAuth
//	@Param			groupId		path	string	true	"ID do grupo"
//	@Param			subjectId	path	string	true	"ID do subject"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/review-groups/{groupId}/subjects/{subjectId}/reviews [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	err := h.reviewService.DeleteReview(c.Request.Context(), middleware.UserIDFrom(c), c.Param("groupId"), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
