package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// ProfileHandler lida com o perfil do usuário autenticado
type ProfileHandler struct {
	userService *services.UserService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GetProfile retorna o perfil do usuário autenticado
//
//	@Summary		Perfil do usuário
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/user/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile atualiza username e/ou avatar do usuário autenticado
//
//	@Summary		Atualiza o perfil
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.UpdateProfileRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/user/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.UserIDFrom(c), req.Username, req.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
