package entities

import (
	"errors"
	"strings"
	"time"
)

const MaxSubjectNameLength = 200

// ReviewSubject representa um item avaliável dentro de um grupo
type ReviewSubject struct {
	ID            string
	ReviewGroupID string
	Name          string
	Images        []string
	Metadata      map[string]any
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft delete
}

// CanBeEditedBy verifica se o membro pode editar/excluir este subject
// (owner, admin ou o criador original)
func (s *ReviewSubject) CanBeEditedBy(m *Membership) bool {
	if m == nil {
		return false
	}
	return m.Role.CanModerateSubjects() || s.CreatedBy == m.UserID
}

// ValidateSubjectName valida o nome do subject (1 a 200 caracteres após trim)
func ValidateSubjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 1 || len([]rune(name)) > MaxSubjectNameLength {
		return "", errors.New("subject name must be 1-200 characters")
	}
	return name, nil
}
