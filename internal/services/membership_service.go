package services

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
)

// MembershipService contém a lógica de negócio para membros e convites
type MembershipService struct {
	groupRepo      repositories.ReviewGroupRepository
	membershipRepo repositories.MembershipRepository
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	uow            ports.UnitOfWork
	notifier       ports.Notifier
	logger         ports.Logger
}

// NewMembershipService cria um novo MembershipService
func NewMembershipService(
	groupRepo repositories.ReviewGroupRepository,
	membershipRepo repositories.MembershipRepository,
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *MembershipService {
	return &MembershipService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		uow:            uow,
		notifier:       notifier,
		logger:         logger,
	}
}

// InvitationEvent é o evento entregue em tempo real ao usuário convidado
type InvitationEvent struct {
	Type         string `json:"type"`
	InvitationID string `json:"invitation_id"`
	GroupID      string `json:"group_id"`
	GroupName    string `json:"group_name"`
	InviterName  string `json:"inviter_name"`
}

// ListMembers retorna os membros ativos do grupo. Somente membros podem ver
// a lista.
func (s *MembershipService) ListMembers(ctx context.Context, userID, groupID string) ([]*entities.Membership, error) {
	if _, err := s.requireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}
	return s.membershipRepo.ListByGroup(ctx, groupID)
}

// Invite convida um usuário pelo display handle. Qualquer membro pode
// convidar. Conflitos: o alvo já é membro, ou já tem convite pendente.
func (s *MembershipService) Invite(ctx context.Context, inviterID, groupID, displayID string) (*entities.Invitation, error) {
	inviterMembership, err := s.requireMembership(ctx, inviterID, groupID)
	if err != nil {
		return nil, err
	}

	invited, err := s.userRepo.FindByDisplayID(ctx, displayID)
	if err != nil {
		return nil, err
	}
	if invited == nil {
		return nil, errors.ErrUserNotFound
	}

	existing, err := s.membershipRepo.FindActive(ctx, groupID, invited.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrAlreadyMember
	}

	pending, err := s.invitationRepo.FindPending(ctx, groupID, displayID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, errors.ErrInvitationPending
	}

	now := time.Now()
	invitation := &entities.Invitation{
		ReviewGroupID:        groupID,
		InviterID:            inviterID,
		InvitedUserDisplayID: displayID,
		Status:               entities.InvitationPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.logger.Info("invitation sent",
		"group_id", groupID,
		"inviter_id", inviterID,
		"invited_display_id", displayID,
	)

	group := inviterMembership.Group
	if group == nil {
		group, err = s.groupRepo.FindByID(ctx, groupID)
		if err != nil {
			return nil, err
		}
	}

	inviter, err := s.userRepo.FindByID(ctx, inviterID)
	if err == nil && inviter != nil && group != nil {
		s.notifier.Notify(invited.ID, InvitationEvent{
			Type:         "invitation",
			InvitationID: invitation.ID,
			GroupID:      groupID,
			GroupName:    group.Name,
			InviterName:  inviter.Username,
		})
	}

	return invitation, nil
}

// ListMyInvitations retorna os convites pendentes endereçados ao display
// handle do usuário
func (s *MembershipService) ListMyInvitations(ctx context.Context, userID string) ([]*entities.Invitation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	if user.DisplayID.IsZero() {
		return []*entities.Invitation{}, nil
	}

	return s.invitationRepo.ListPendingByDisplayID(ctx, user.DisplayID.String())
}

// AcceptInvitation aceita um convite pendente e cria o vínculo de membro em
// uma única transação
func (s *MembershipService) AcceptInvitation(ctx context.Context, userID, invitationID string) (*entities.Membership, error) {
	invitation, _, err := s.resolveOwnInvitation(ctx, userID, invitationID)
	if err != nil {
		return nil, err
	}

	existing, err := s.membershipRepo.FindActive(ctx, invitation.ReviewGroupID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrAlreadyMember
	}

	now := time.Now()
	membership := &entities.Membership{
		ReviewGroupID: invitation.ReviewGroupID,
		UserID:        userID,
		Role:          entities.RoleMember,
		JoinedAt:      now,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.membershipRepo.Create(txCtx, membership); err != nil {
			return err
		}
		invitation.Status = entities.InvitationAccepted
		invitation.UpdatedAt = now
		return s.invitationRepo.Update(txCtx, invitation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invitation accepted",
		"invitation_id", invitationID,
		"group_id", invitation.ReviewGroupID,
		"user_id", userID,
	)
	return membership, nil
}

// DeclineInvitation recusa um convite pendente
func (s *MembershipService) DeclineInvitation(ctx context.Context, userID, invitationID string) error {
	invitation, _, err := s.resolveOwnInvitation(ctx, userID, invitationID)
	if err != nil {
		return err
	}

	invitation.Status = entities.InvitationDeclined
	invitation.UpdatedAt = time.Now()
	if err := s.invitationRepo.Update(ctx, invitation); err != nil {
		return err
	}

	s.logger.Info("invitation declined", "invitation_id", invitationID, "user_id", userID)
	return nil
}

// resolveOwnInvitation carrega o convite e garante que ele está pendente e
// endereçado ao display handle do usuário autenticado
func (s *MembershipService) resolveOwnInvitation(ctx context.Context, userID, invitationID string) (*entities.Invitation, *entities.User, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return nil, nil, err
	}
	if invitation == nil || !invitation.IsPending() {
		return nil, nil, errors.ErrInvitationNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.ErrUserNotFound
	}
	if user.DisplayID.IsZero() || user.DisplayID.String() != invitation.InvitedUserDisplayID {
		return nil, nil, errors.ErrNotInvited
	}

	return invitation, user, nil
}

// requireMembership exige vínculo ativo do usuário no grupo
func (s *MembershipService) requireMembership(ctx context.Context, userID, groupID string) (*entities.Membership, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.IsDeleted() {
		return nil, errors.ErrGroupNotFound
	}

	membership, err := s.membershipRepo.FindActive(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, errors.ErrNotMember
	}
	membership.Group = group
	return membership, nil
}
