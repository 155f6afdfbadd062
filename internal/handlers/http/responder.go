package http

import (
	errs "errors"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/handlers/dto"
)

// respondError traduz erros de domínio para respostas RFC 7807.
// O mapeamento é compartilhado por todos os handlers.
func respondError(c *gin.Context, err error) {
	if validation, ok := errors.AsValidation(err); ok {
		response := dto.ValidationErrorResponseI18n(c, validation.MessageID, nil)
		dto.RespondProblem(c, response)
		return
	}

	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrGroupNotFound),
		errs.Is(err, errors.ErrSubjectNotFound),
		errs.Is(err, errors.ErrReviewNotFound),
		errs.Is(err, errors.ErrInvitationNotFound):
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrAlreadyMember),
		errs.Is(err, errors.ErrInvitationPending),
		errs.Is(err, errors.ErrAlreadyReviewed):
		dto.RespondProblem(c, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrNotMember),
		errs.Is(err, errors.ErrNotOwner),
		errs.Is(err, errors.ErrCannotEditSubject),
		errs.Is(err, errors.ErrNotInvited):
		dto.RespondProblem(c, dto.ForbiddenErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCategory),
		errs.Is(err, errors.ErrSubjectHasReviews):
		dto.RespondProblem(c, dto.BadRequestErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrUnauthorized):
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c, err.Error()))

	default:
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError trata erros de binding/validação do corpo da requisição
func respondBindingError(c *gin.Context, err error) {
	fieldErrors := dto.ValidationErrorsFrom(c, err)
	detailKey := "error.validation_failed"
	if len(fieldErrors) == 0 {
		detailKey = "error.invalid_request_body"
	}
	response := dto.ValidationErrorResponseI18n(c, detailKey, fieldErrors)
	dto.RespondProblem(c, response)
}
