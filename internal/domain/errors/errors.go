package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrGroupNotFound      = errors.New("error.group_not_found")
	ErrSubjectNotFound    = errors.New("error.subject_not_found")
	ErrReviewNotFound     = errors.New("error.review_not_found")
	ErrInvitationNotFound = errors.New("error.invitation_not_found")
	ErrInvalidCategory    = errors.New("error.invalid_category")

	ErrNotMember         = errors.New("error.not_member")
	ErrNotOwner          = errors.New("error.not_owner")
	ErrCannotEditSubject = errors.New("error.cannot_edit_subject")
	ErrNotInvited        = errors.New("error.not_invited")

	ErrAlreadyMember     = errors.New("error.already_member")
	ErrInvitationPending = errors.New("error.invitation_pending")
	ErrAlreadyReviewed   = errors.New("error.already_reviewed")

	ErrSubjectHasReviews = errors.New("error.subject_has_reviews")
	ErrHandleExhausted   = errors.New("error.handle_exhausted")

	ErrUnauthorized = errors.New("error.unauthorized")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// ValidationError representa um erro de validação de entrada com o
// message ID de i18n correspondente
type ValidationError struct {
	MessageID string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.MessageID + ": " + e.Err.Error()
	}
	return e.MessageID
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidation cria um ValidationError com um message ID de i18n
func NewValidation(messageID string, err error) *ValidationError {
	return &ValidationError{MessageID: messageID, Err: err}
}

// AsValidation extrai um ValidationError da cadeia de erros, se houver
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
