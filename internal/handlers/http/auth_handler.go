package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/infrastructure/auth"
	"github.com/revibako/backend/internal/services"
)

// AuthHandler lida com o fluxo de login OAuth e registro
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login inicia o fluxo OAuth redirecionando para o provider
//
//	@Summary		Inicia login OAuth
//	@Tags			auth
//	@Param			provider	path	string	true	"Provider (google ou github)"
//	@Success		307
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/auth/login/{provider} [get]
func (h *AuthHandler) Login(c *gin.Context) {
	provider := c.Param("provider")

	url, err := h.authService.BeginLogin(c.Request.Context(), provider)
	if err != nil {
		if errs.Is(err, auth.ErrUnknownProvider) {
			dto.RespondProblem(c, dto.BadRequestErrorResponseI18n(c, "error.unknown_provider"))
			return
		}
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback completa o fluxo OAuth e emite a sessão
//
//	@Summary		Callback OAuth
//	@Tags			auth
//	@Produce		json
//	@Param			state	query		string	true	"State anti-CSRF"
//	@Param			code	query		string	true	"Authorization code"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		dto.RespondProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_request_body"))
		return
	}

	result, err := h.authService.CompleteLogin(c.Request.Context(), state, code)
	if err != nil {
		if errs.Is(err, auth.ErrStateNotFound) {
			dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_state"))
			return
		}
		if errs.Is(err, auth.ErrUnknownProvider) {
			dto.RespondProblem(c, dto.BadRequestErrorResponseI18n(c, "error.unknown_provider"))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// RegistrationStatus informa se o usuário ainda precisa escolher username
//
//	@Summary		Status do registro
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStatusResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/auth/register [get]
func (h *AuthHandler) RegistrationStatus(c *gin.Context) {
	userID := middleware.UserIDFrom(c)

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationStatusResponse{
		NeedsUsername: user.NeedsUsername(),
		User:          dto.ToUserResponse(user),
	})
}

// CompleteRegistration define o username e gera o display handle
//
//	@Summary		Completa o registro
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CompleteRegistrationRequest	true	"Username escolhido"
//	@Success		200		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/auth/register [post]
func (h *AuthHandler) CompleteRegistration(c *gin.Context) {
	var req dto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID := middleware.UserIDFrom(c)
	user, err := h.userService.CompleteRegistration(c.Request.Context(), userID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout revoga a sessão atual
//
//	@Summary		Logout
//	@Tags			auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c, ""))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
