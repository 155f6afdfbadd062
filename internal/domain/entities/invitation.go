package entities

import "time"

// InvitationStatus representa o estado de um convite
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Invitation representa um convite pendente para entrar em um grupo.
// O convidado é resolvido pelo display handle no momento do convite.
type Invitation struct {
	ID                   string
	ReviewGroupID        string
	InviterID            string
	InvitedUserDisplayID string
	Status               InvitationStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time

	// Populados em leituras com join
	Group   *ReviewGroup
	Inviter *User
}

// IsPending verifica se o convite ainda aguarda resposta
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationPending && i.DeletedAt == nil
}
