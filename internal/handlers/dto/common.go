package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RespondProblem escreve a resposta com o media type de RFC 7807
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação (400)
func ValidationErrorResponseI18n(c *gin.Context, detailKey string, validationErrors []ValidationError, params ...map[string]interface{}) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.validation_failed"
	}
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"problem.title.validation",
		detailKey,
		400,
		params...,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"problem.title.not_found",
		detailKey,
		404,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"problem.title.conflict",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized"
	}
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"problem.title.unauthorized",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/forbidden",
		"problem.title.forbidden",
		detailKey,
		403,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"problem.title.internal",
		"error.internal",
		500,
	)
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 genérica
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"problem.title.bad_request",
		detailKey,
		400,
		params...,
	)
}

// ValidationErrorsFrom converte erros do validator em erros de campo traduzidos.
// Erros de binding que não são do validator (JSON malformado) retornam lista vazia.
func ValidationErrorsFrom(c *gin.Context, err error) []ValidationError {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	result := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		key := "validation." + fe.Tag()
		message := T(c, key, map[string]interface{}{"Field": fe.Field()})
		if message == key {
			message = T(c, "validation.invalid", map[string]interface{}{"Field": fe.Field()})
		}
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		})
	}
	return result
}
