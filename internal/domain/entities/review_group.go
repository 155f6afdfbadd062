package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	MaxGroupNameLength        = 100
	MaxGroupDescriptionLength = 500
)

// MetadataField descreve um campo livre do schema de metadados do grupo.
// O schema é armazenado como está; valores enviados nos subjects são opacos.
type MetadataField struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// ReviewGroup representa um grupo de avaliação em torno de uma categoria
type ReviewGroup struct {
	ID             string
	Name           string
	Description    *string
	CategoryID     string
	IsPrivate      bool
	ImageURL       *string
	MetadataFields []MetadataField
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft delete

	// Populado em leituras com join
	Category *Category
}

// IsDeleted verifica se o grupo foi deletado (soft delete)
func (g *ReviewGroup) IsDeleted() bool {
	return g.DeletedAt != nil
}

// ValidateGroupName valida o nome do grupo (1 a 100 caracteres após trim)
func ValidateGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 1 || len([]rune(name)) > MaxGroupNameLength {
		return "", errors.New("group name must be 1-100 characters")
	}
	return name, nil
}

// ValidateGroupDescription valida a descrição (até 500 caracteres)
func ValidateGroupDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil, nil
	}
	if len([]rune(trimmed)) > MaxGroupDescriptionLength {
		return nil, errors.New("description must be 500 characters or less")
	}
	return &trimmed, nil
}
