package services

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
)

func TestInvite(t *testing.T) {
	t.Run("membro convida por display handle e o convidado é notificado", func(t *testing.T) {
		g := NewWithT(t)
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
		invited := newTestUser(t, w.users, "invited@example.com", "invited", "222222")
		w.seedMember(group.ID, inviter.ID, entities.RoleMember)
		service := w.membershipService()

		invitation, err := service.Invite(context.Background(), inviter.ID, group.ID, "222222")
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(invitation.Status).To(Equal(entities.InvitationPending))
		g.Expect(invitation.InvitedUserDisplayID).To(Equal("222222"))

		g.Expect(w.notifier.events).To(HaveLen(1))
		g.Expect(w.notifier.events[0].userID).To(Equal(invited.ID))
		event, ok := w.notifier.events[0].event.(InvitationEvent)
		g.Expect(ok).To(BeTrue())
		g.Expect(event.Type).To(Equal("invitation"))
		g.Expect(event.GroupID).To(Equal(group.ID))
	})

	t.Run("não membro não pode convidar", func(t *testing.T) {
		g := NewWithT(t)
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		outsider := newTestUser(t, w.users, "out@example.com", "out", "111111")
		newTestUser(t, w.users, "invited@example.com", "invited", "222222")

		_, err := w.membershipService().Invite(context.Background(), outsider.ID, group.ID, "222222")
		g.Expect(err).To(MatchError(errors.ErrNotMember))
	})

	t.Run("handle desconhecido", func(t *testing.T) {
		g := NewWithT(t)
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
		w.seedMember(group.ID, inviter.ID, entities.RoleMember)

		_, err := w.membershipService().Invite(context.Background(), inviter.ID, group.ID, "999999")
		g.Expect(err).To(MatchError(errors.ErrUserNotFound))
	})

	t.Run("convidado já é membro", func(t *testing.T) {
		g := NewWithT(t)
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
		invited := newTestUser(t, w.users, "invited@example.com", "invited", "222222")
		w.seedMember(group.ID, inviter.ID, entities.RoleMember)
		w.seedMember(group.ID, invited.ID, entities.RoleMember)

		_, err := w.membershipService().Invite(context.Background(), inviter.ID, group.ID, "222222")
		g.Expect(err).To(MatchError(errors.ErrAlreadyMember))
	})

	t.Run("convite já pendente", func(t *testing.T) {
		g := NewWithT(t)
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
		newTestUser(t, w.users, "invited@example.com", "invited", "222222")
		w.seedMember(group.ID, inviter.ID, entities.RoleMember)
		service := w.membershipService()

		_, err := service.Invite(context.Background(), inviter.ID, group.ID, "222222")
		g.Expect(err).ToNot(HaveOccurred())

		_, err = service.Invite(context.Background(), inviter.ID, group.ID, "222222")
		g.Expect(err).To(MatchError(errors.ErrInvitationPending))
	})
}

func TestAcceptInvitation(t *testing.T) {
	setup := func(t *testing.T) (*world, *entities.User, *entities.Invitation, *entities.ReviewGroup) {
		t.Helper()
		w := newWorld()
		category := w.seedCategory("映画")
		group := w.seedGroup(category.ID, "総合")
		inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
		invited := newTestUser(t, w.users, "invited@example.com", "invited", "222222")
		w.seedMember(group.ID, inviter.ID, entities.RoleOwner)

		invitation, err := w.membershipService().Invite(context.Background(), inviter.ID, group.ID, "222222")
		if err != nil {
			t.Fatalf("falha no setup do convite: %v", err)
		}
		return w, invited, invitation, group
	}

	t.Run("aceitar cria vínculo de member", func(t *testing.T) {
		g := NewWithT(t)
		w, invited, invitation, group := setup(t)

		membership, err := w.membershipService().AcceptInvitation(context.Background(), invited.ID, invitation.ID)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(membership.Role).To(Equal(entities.RoleMember))
		g.Expect(membership.ReviewGroupID).To(Equal(group.ID))
		g.Expect(invitation.Status).To(Equal(entities.InvitationAccepted))
	})

	t.Run("convite de outro usuário não pode ser aceito", func(t *testing.T) {
		g := NewWithT(t)
		w, _, invitation, _ := setup(t)
		stranger := newTestUser(t, w.users, "x@example.com", "x", "333333")

		_, err := w.membershipService().AcceptInvitation(context.Background(), stranger.ID, invitation.ID)
		g.Expect(err).To(MatchError(errors.ErrNotInvited))
	})

	t.Run("convite já respondido some", func(t *testing.T) {
		g := NewWithT(t)
		w, invited, invitation, _ := setup(t)
		service := w.membershipService()

		_, err := service.AcceptInvitation(context.Background(), invited.ID, invitation.ID)
		g.Expect(err).ToNot(HaveOccurred())

		_, err = service.AcceptInvitation(context.Background(), invited.ID, invitation.ID)
		g.Expect(err).To(MatchError(errors.ErrInvitationNotFound))
	})
}

func TestDeclineInvitation(t *testing.T) {
	g := NewWithT(t)
	w := newWorld()
	category := w.seedCategory("映画")
	group := w.seedGroup(category.ID, "総合")
	inviter := newTestUser(t, w.users, "inviter@example.com", "inviter", "111111")
	invited := newTestUser(t, w.users, "invited@example.com", "invited", "222222")
	w.seedMember(group.ID, inviter.ID, entities.RoleOwner)
	service := w.membershipService()

	invitation, err := service.Invite(context.Background(), inviter.ID, group.ID, "222222")
	g.Expect(err).ToNot(HaveOccurred())

	err = service.DeclineInvitation(context.Background(), invited.ID, invitation.ID)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(invitation.Status).To(Equal(entities.InvitationDeclined))

	// Recusado, deixa de aparecer na listagem de pendentes
	pending, err := service.ListMyInvitations(context.Background(), invited.ID)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(pending).To(BeEmpty())

	// E um novo convite volta a ser possível
	_, err = service.Invite(context.Background(), inviter.ID, group.ID, "222222")
	g.Expect(err).ToNot(HaveOccurred())
}

func TestListMembers(t *testing.T) {
	g := NewWithT(t)
	w := newWorld()
	category := w.seedCategory("映画")
	group := w.seedGroup(category.ID, "総合")
	owner := newTestUser(t, w.users, "owner@example.com", "owner", "111111")
	member := newTestUser(t, w.users, "m@example.com", "m", "222222")
	outsider := newTestUser(t, w.users, "out@example.com", "out", "333333")
	w.seedMember(group.ID, owner.ID, entities.RoleOwner)
	w.seedMember(group.ID, member.ID, entities.RoleMember)
	service := w.membershipService()

	t.Run("membro lista os membros", func(t *testing.T) {
		members, err := service.ListMembers(context.Background(), member.ID, group.ID)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(members).To(HaveLen(2))
	})

	t.Run("não membro recebe erro", func(t *testing.T) {
		_, err := service.ListMembers(context.Background(), outsider.ID, group.ID)
		g.Expect(err).To(MatchError(errors.ErrNotMember))
	})
}
