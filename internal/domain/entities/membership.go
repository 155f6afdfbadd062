package entities

import "time"

// Membership representa o vínculo de um usuário com um grupo de avaliação
type Membership struct {
	ID            string
	ReviewGroupID string
	UserID        string
	Role          Role
	JoinedAt      time.Time
	DeletedAt     *time.Time // Soft delete

	// Populados em leituras com join
	User  *User
	Group *ReviewGroup
}

// IsActive verifica se o vínculo ainda está ativo
func (m *Membership) IsActive() bool {
	return m.DeletedAt == nil
}
