package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/services"
)

// UploadHandler lida com uploads de imagens
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler cria um novo UploadHandler
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage grava uma imagem no storage e retorna a URL pública
//
//	@Summary		Upload de imagem
//	@Tags			upload
//	@Accept			mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"Imagem (JPEG, PNG, GIF ou WebP)"
//	@Success		201		{object}	dto.UploadResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, "error.file_required", nil)
		dto.RespondProblem(c, response)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.uploadService.UploadImage(
		c.Request.Context(),
		middleware.UserIDFrom(c),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
