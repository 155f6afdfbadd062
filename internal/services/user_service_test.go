package services

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/valueobjects"
	"github.com/revibako/backend/internal/infrastructure/auth"
)

func newTestUser(t *testing.T, repo *fakeUserRepo, email, username, handle string) *entities.User {
	t.Helper()

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("email inválido no setup: %v", err)
	}

	user := &entities.User{
		Email:     emailVO,
		Username:  username,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if handle != "" {
		h, err := valueobjects.NewDisplayHandle(handle)
		if err != nil {
			t.Fatalf("handle inválido no setup: %v", err)
		}
		user.DisplayID = h
	}
	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("falha no setup do usuário: %v", err)
	}
	return user
}

func TestResolveOAuthUser(t *testing.T) {
	t.Run("cria usuário novo sem username", func(t *testing.T) {
		g := NewWithT(t)
		repo := newFakeUserRepo()
		service := NewUserService(repo, &fakeLogger{})

		profile := &auth.Profile{
			Subject:   "oauth-123",
			Email:     "new@example.com",
			Name:      "New User",
			AvatarURL: "https://cdn.example.com/a.png",
		}

		user, err := service.ResolveOAuthUser(context.Background(), profile)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(user.ID).ToNot(BeEmpty())
		g.Expect(user.NeedsUsername()).To(BeTrue())
		g.Expect(user.DisplayID.IsZero()).To(BeTrue())
		g.Expect(*user.AvatarURL).To(Equal("https://cdn.example.com/a.png"))
	})

	t.Run("reutiliza usuário existente pelo email", func(t *testing.T) {
		g := NewWithT(t)
		repo := newFakeUserRepo()
		service := NewUserService(repo, &fakeLogger{})
		existing := newTestUser(t, repo, "taro@example.com", "taro", "123456")

		profile := &auth.Profile{Email: "taro@example.com", Name: "Taro"}

		user, err := service.ResolveOAuthUser(context.Background(), profile)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(user.ID).To(Equal(existing.ID))
		g.Expect(user.NeedsUsername()).To(BeFalse())
	})
}

func TestCompleteRegistration(t *testing.T) {
	t.Run("define username e gera handle único", func(t *testing.T) {
		g := NewWithT(t)
		repo := newFakeUserRepo()
		service := NewUserService(repo, &fakeLogger{})
		user := newTestUser(t, repo, "new@example.com", "", "")

		updated, err := service.CompleteRegistration(context.Background(), user.ID, "  hanako ")
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(updated.Username).To(Equal("hanako"))
		g.Expect(updated.DisplayID.IsZero()).To(BeFalse())
		g.Expect(len(updated.DisplayID.String())).To(Equal(6))
	})

	t.Run("preserva handle existente", func(t *testing.T) {
		g := NewWithT(t)
		repo := newFakeUserRepo()
		service := NewUserService(repo, &fakeLogger{})
		user := newTestUser(t, repo, "taro@example.com", "taro", "654321")

		updated, err := service.CompleteRegistration(context.Background(), user.ID, "taro2")
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(updated.DisplayID.String()).To(Equal("654321"))
	})

	t.Run("rejeita username acima de 10 runas", func(t *testing.T) {
		g := NewWithT(t)
		repo := newFakeUserRepo()
		service := NewUserService(repo, &fakeLogger{})
		user := newTestUser(t, repo, "new@example.com", "", "")

		_, err := service.CompleteRegistration(context.Background(), user.ID, "abcdefghijk")
		g.Expect(err).To(HaveOccurred())
		_, ok := errors.AsValidation(err)
		g.Expect(ok).To(BeTrue())
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		g := NewWithT(t)
		service := NewUserService(newFakeUserRepo(), &fakeLogger{})

		_, err := service.CompleteRegistration(context.Background(), "missing", "taro")
		g.Expect(err).To(MatchError(errors.ErrUserNotFound))
	})
}

// exhaustedUserRepo simula um espaço de handles completamente ocupado
type exhaustedUserRepo struct {
	*fakeUserRepo
	existsCalls int
}

func (r *exhaustedUserRepo) DisplayIDExists(_ context.Context, _ string) (bool, error) {
	r.existsCalls++
	return true, nil
}

func TestHandleGenerationBounded(t *testing.T) {
	g := NewWithT(t)
	repo := &exhaustedUserRepo{fakeUserRepo: newFakeUserRepo()}
	service := NewUserService(repo, &fakeLogger{})
	user := newTestUser(t, repo.fakeUserRepo, "new@example.com", "", "")

	_, err := service.CompleteRegistration(context.Background(), user.ID, "taro")
	g.Expect(err).To(MatchError(errors.ErrHandleExhausted))
	// 10 tentativas de 6 dígitos + 10 de 7 dígitos
	g.Expect(repo.existsCalls).To(Equal(20))
}

func TestUpdateProfile(t *testing.T) {
	g := NewWithT(t)
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeLogger{})
	user := newTestUser(t, repo, "taro@example.com", "taro", "123456")

	newName := "jiro"
	avatar := "https://cdn.example.com/new.png"
	updated, err := service.UpdateProfile(context.Background(), user.ID, &newName, &avatar)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(updated.Username).To(Equal("jiro"))
	g.Expect(*updated.AvatarURL).To(Equal(avatar))
}
