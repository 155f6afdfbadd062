package services

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
)

func TestCreateSubject(t *testing.T) {
	g := NewWithT(t)
	w := newWorld()
	category := w.seedCategory("映画")
	group := w.seedGroup(category.ID, "総合")
	member := newTestUser(t, w.users, "m@example.com", "m", "111111")
	w.seedMember(group.ID, member.ID, entities.RoleMember)
	service := w.subjectService()

	t.Run("membro cria subject com metadados livres", func(t *testing.T) {
		subject, err := service.CreateSubject(context.Background(), member.ID, group.ID, SubjectInput{
			Name:     " ある映画 ",
			Metadata: map[string]any{"year": 2024, "director": "someone"},
		})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(subject.Name).To(Equal("ある映画"))
		g.Expect(subject.CreatedBy).To(Equal(member.ID))
		g.Expect(subject.Metadata["year"]).To(Equal(2024))
	})

	t.Run("não membro não pode criar", func(t *testing.T) {
		outsider := newTestUser(t, w.users, "out@example.com", "out", "999999")
		_, err := service.CreateSubject(context.Background(), outsider.ID, group.ID, SubjectInput{Name: "x"})
		g.Expect(err).To(MatchError(errors.ErrNotMember))
	})
}

func TestUpdateSubjectPermissions(t *testing.T) {
	g := NewWithT(t)
	w := newWorld()
	category := w.seedCategory("映画")
	group := w.seedGroup(category.ID, "総合")
	creator := newTestUser(t, w.users, "c@example.com", "c", "111111")
	admin := newTestUser(t, w.users, "a@example.com", "a", "222222")
	member := newTestUser(t, w.users, "m@example.com", "m", "333333")
	w.seedMember(group.ID, creator.ID, entities.RoleMember)
	w.seedMember(group.ID, admin.ID, entities.RoleAdmin)
	w.seedMember(group.ID, member.ID, entities.RoleMember)
	service := w.subjectService()

	subject, err := service.CreateSubject(context.Background(), creator.ID, group.ID, SubjectInput{Name: "original"})
	g.Expect(err).ToNot(HaveOccurred())

	t.Run("criador edita", func(t *testing.T) {
		updated, err := service.UpdateSubject(context.Background(), creator.ID, group.ID, subject.ID, SubjectInput{Name: "editado"})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(updated.Name).To(Equal("editado"))
	})

	t.Run("admin edita subject de outro", func(t *testing.T) {
		_, err := service.UpdateSubject(context.Background(), admin.ID, group.ID, subject.ID, SubjectInput{Name: "pelo admin"})
		g.Expect(err).ToNot(HaveOccurred())
	})

	t.Run("member comum não edita subject de outro", func(t *testing.T) {
		_, err := service.UpdateSubject(context.Background(), member.ID, group.ID, subject.ID, SubjectInput{Name: "negado"})
		g.Expect(err).To(MatchError(errors.ErrCannotEditSubject))
	})
}

func TestDeleteSubject(t *testing.T) {
	g := NewWithT(t)
	f := setupReviewFixture(t)
	subjectService := f.w.subjectService()
	reviewService := f.w.reviewService()

	t.Run("subject com reviews não pode ser excluído", func(t *testing.T) {
		_, err := reviewService.CreateReview(context.Background(), f.member.ID, f.group.ID, f.subject.ID, ReviewInput{
			Scores: map[string]int{f.crit1: 3, f.crit2: 3, f.crit3: 3},
		})
		g.Expect(err).ToNot(HaveOccurred())

		err = subjectService.DeleteSubject(context.Background(), f.member.ID, f.group.ID, f.subject.ID)
		g.Expect(err).To(MatchError(errors.ErrSubjectHasReviews))
	})

	t.Run("sem reviews ativas a exclusão passa", func(t *testing.T) {
		err := reviewService.DeleteReview(context.Background(), f.member.ID, f.group.ID, f.subject.ID)
		g.Expect(err).ToNot(HaveOccurred())

		err = subjectService.DeleteSubject(context.Background(), f.member.ID, f.group.ID, f.subject.ID)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(f.w.subjects.subjects[f.subject.ID].DeletedAt).ToNot(BeNil())
	})
}

func TestGetSubjectBreakdown(t *testing.T) {
	g := NewWithT(t)
	f := setupReviewFixture(t)
	second := newTestUser(t, f.w.users, "m2@example.com", "m2", "222222")
	f.w.seedMember(f.group.ID, second.ID, entities.RoleMember)
	reviewService := f.w.reviewService()
	subjectService := f.w.subjectService()

	_, err := reviewService.CreateReview(context.Background(), f.member.ID, f.group.ID, f.subject.ID, ReviewInput{
		Scores: map[string]int{f.crit1: 5, f.crit2: 4, f.crit3: 3},
	})
	g.Expect(err).ToNot(HaveOccurred())
	_, err = reviewService.CreateReview(context.Background(), second.ID, f.group.ID, f.subject.ID, ReviewInput{
		Scores: map[string]int{f.crit1: 4, f.crit2: 2, f.crit3: 3},
	})
	g.Expect(err).ToNot(HaveOccurred())

	detail, err := subjectService.GetSubject(context.Background(), f.member.ID, f.group.ID, f.subject.ID)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(detail.ReviewCount).To(Equal(2))
	// Totais: 4.0 e 3.0
	g.Expect(detail.AverageScore).To(Equal(3.5))

	g.Expect(detail.Breakdown).To(HaveLen(3))
	byName := make(map[string]float64)
	for _, avg := range detail.Breakdown {
		byName[avg.CriterionName] = avg.Average
	}
	g.Expect(byName["ストーリー"]).To(Equal(4.5))
	g.Expect(byName["映像"]).To(Equal(3.0))
	g.Expect(byName["音楽"]).To(Equal(3.0))
}

func TestListSubjects(t *testing.T) {
	g := NewWithT(t)
	f := setupReviewFixture(t)
	service := f.w.subjectService()

	_, err := f.w.reviewService().CreateReview(context.Background(), f.member.ID, f.group.ID, f.subject.ID, ReviewInput{
		Scores: map[string]int{f.crit1: 5, f.crit2: 5, f.crit3: 5},
	})
	g.Expect(err).ToNot(HaveOccurred())

	summaries, err := service.ListSubjects(context.Background(), f.member.ID, f.group.ID)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(summaries).To(HaveLen(1))
	g.Expect(summaries[0].ReviewCount).To(Equal(1))
	g.Expect(summaries[0].AverageScore).To(Equal(5.0))
}
