package services

import (
	"context"
	"fmt"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/ports"
)

// Fakes em memória usados pelos testes dos services

type fakeLogger struct{}

func (l *fakeLogger) Info(msg string, args ...any)  {}
func (l *fakeLogger) Error(msg string, args ...any) {}
func (l *fakeLogger) Debug(msg string, args ...any) {}
func (l *fakeLogger) Warn(msg string, args ...any)  {}
func (l *fakeLogger) With(args ...any) ports.Logger { return l }

type fakeUow struct{}

func (u *fakeUow) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUow) Commit(ctx context.Context) error                   { return nil }
func (u *fakeUow) Rollback(ctx context.Context) error                 { return nil }
func (u *fakeUow) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type notifierEvent struct {
	userID string
	event  any
}

type fakeNotifier struct {
	events []notifierEvent
}

func (n *fakeNotifier) Notify(userID string, event any) {
	n.events = append(n.events, notifierEvent{userID: userID, event: event})
}

var idCounter int

func nextID(prefix string) string {
	idCounter++
	return fmt.Sprintf("%s-%d", prefix, idCounter)
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = nextID("user")
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted() {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email && !user.IsDeleted() {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByDisplayID(_ context.Context, displayID string) (*entities.User, error) {
	for _, user := range r.users {
		if user.DisplayID.String() == displayID && !user.IsDeleted() {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DisplayIDExists(_ context.Context, displayID string) (bool, error) {
	for _, user := range r.users {
		if user.DisplayID.String() == displayID && !user.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeCategoryRepo struct {
	categories []*entities.Category
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entities.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entities.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Seed(_ context.Context, categories []*entities.Category) error {
	for _, category := range categories {
		if category.ID == "" {
			category.ID = nextID("cat")
		}
	}
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

type fakeGroupRepo struct {
	groups   map[string]*entities.ReviewGroup
	criteria []*entities.EvaluationCriterion
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*entities.ReviewGroup)}
}

func (r *fakeGroupRepo) Create(_ context.Context, group *entities.ReviewGroup) error {
	if group.ID == "" {
		group.ID = nextID("group")
	}
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id string) (*entities.ReviewGroup, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	return group, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, group *entities.ReviewGroup) error {
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if group, ok := r.groups[id]; ok {
		group.DeletedAt = &at
	}
	return nil
}

func (r *fakeGroupRepo) CreateCriteria(_ context.Context, criteria []*entities.EvaluationCriterion) error {
	for _, criterion := range criteria {
		if criterion.ID == "" {
			criterion.ID = nextID("crit")
		}
		r.criteria = append(r.criteria, criterion)
	}
	return nil
}

func (r *fakeGroupRepo) ListCriteria(_ context.Context, groupID string) ([]*entities.EvaluationCriterion, error) {
	var result []*entities.EvaluationCriterion
	for _, criterion := range r.criteria {
		if criterion.ReviewGroupID == groupID && criterion.DeletedAt == nil {
			result = append(result, criterion)
		}
	}
	return result, nil
}

func (r *fakeGroupRepo) SoftDeleteCriteriaByGroup(_ context.Context, groupID string, at time.Time) error {
	for _, criterion := range r.criteria {
		if criterion.ReviewGroupID == groupID {
			criterion.DeletedAt = &at
		}
	}
	return nil
}

type fakeMembershipRepo struct {
	memberships []*entities.Membership
	users       *fakeUserRepo
	groups      *fakeGroupRepo
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *entities.Membership) error {
	if membership.ID == "" {
		membership.ID = nextID("member")
	}
	r.memberships = append(r.memberships, membership)
	return nil
}

func (r *fakeMembershipRepo) FindActive(_ context.Context, groupID, userID string) (*entities.Membership, error) {
	for _, membership := range r.memberships {
		if membership.ReviewGroupID == groupID && membership.UserID == userID && membership.IsActive() {
			return membership, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) ListByGroup(_ context.Context, groupID string) ([]*entities.Membership, error) {
	var result []*entities.Membership
	for _, membership := range r.memberships {
		if membership.ReviewGroupID == groupID && membership.IsActive() {
			if r.users != nil {
				membership.User = r.users.users[membership.UserID]
			}
			result = append(result, membership)
		}
	}
	return result, nil
}

func (r *fakeMembershipRepo) ListByUser(_ context.Context, userID string) ([]*entities.Membership, error) {
	var result []*entities.Membership
	for _, membership := range r.memberships {
		if membership.UserID == userID && membership.IsActive() {
			if r.groups != nil {
				membership.Group = r.groups.groups[membership.ReviewGroupID]
			}
			result = append(result, membership)
		}
	}
	return result, nil
}

func (r *fakeMembershipRepo) CountByGroup(_ context.Context, groupID string) (int64, error) {
	var count int64
	for _, membership := range r.memberships {
		if membership.ReviewGroupID == groupID && membership.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *fakeMembershipRepo) SoftDeleteByGroup(_ context.Context, groupID string, at time.Time) error {
	for _, membership := range r.memberships {
		if membership.ReviewGroupID == groupID {
			membership.DeletedAt = &at
		}
	}
	return nil
}

type fakeSubjectRepo struct {
	subjects map[string]*entities.ReviewSubject
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[string]*entities.ReviewSubject)}
}

func (r *fakeSubjectRepo) Create(_ context.Context, subject *entities.ReviewSubject) error {
	if subject.ID == "" {
		subject.ID = nextID("subject")
	}
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) FindByID(_ context.Context, groupID, subjectID string) (*entities.ReviewSubject, error) {
	subject, ok := r.subjects[subjectID]
	if !ok || subject.ReviewGroupID != groupID || subject.DeletedAt != nil {
		return nil, nil
	}
	return subject, nil
}

func (r *fakeSubjectRepo) ListByGroup(_ context.Context, groupID string) ([]*entities.ReviewSubject, error) {
	var result []*entities.ReviewSubject
	for _, subject := range r.subjects {
		if subject.ReviewGroupID == groupID && subject.DeletedAt == nil {
			result = append(result, subject)
		}
	}
	return result, nil
}

func (r *fakeSubjectRepo) ListIDsByGroup(_ context.Context, groupID string) ([]string, error) {
	var result []string
	for _, subject := range r.subjects {
		if subject.ReviewGroupID == groupID {
			result = append(result, subject.ID)
		}
	}
	return result, nil
}

func (r *fakeSubjectRepo) Update(_ context.Context, subject *entities.ReviewSubject) error {
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if subject, ok := r.subjects[id]; ok {
		subject.DeletedAt = &at
	}
	return nil
}

func (r *fakeSubjectRepo) SoftDeleteByGroup(_ context.Context, groupID string, at time.Time) error {
	for _, subject := range r.subjects {
		if subject.ReviewGroupID == groupID {
			subject.DeletedAt = &at
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*entities.Review
	scores  []*entities.EvaluationScore
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entities.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entities.Review) error {
	if review.ID == "" {
		review.ID = nextID("review")
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entities.Review) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindActive(_ context.Context, subjectID, userID string) (*entities.Review, error) {
	for _, review := range r.reviews {
		if review.ReviewSubjectID == subjectID && review.UserID == userID && review.DeletedAt == nil {
			return review, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListBySubject(_ context.Context, subjectID string) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range r.reviews {
		if review.ReviewSubjectID == subjectID && review.DeletedAt == nil {
			result = append(result, review)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var count int64
	for _, review := range r.reviews {
		if review.ReviewSubjectID == subjectID && review.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeReviewRepo) ListActiveIDsBySubjects(_ context.Context, subjectIDs []string) ([]string, error) {
	wanted := make(map[string]bool, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = true
	}
	var result []string
	for _, review := range r.reviews {
		if wanted[review.ReviewSubjectID] && review.DeletedAt == nil {
			result = append(result, review.ID)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if review, ok := r.reviews[id]; ok {
		review.DeletedAt = &at
	}
	return nil
}

func (r *fakeReviewRepo) SoftDeleteByIDs(_ context.Context, ids []string, at time.Time) error {
	for _, id := range ids {
		if review, ok := r.reviews[id]; ok {
			review.DeletedAt = &at
		}
	}
	return nil
}

func (r *fakeReviewRepo) CreateScores(_ context.Context, scores []*entities.EvaluationScore) error {
	for _, score := range scores {
		if score.ID == "" {
			score.ID = nextID("score")
		}
		r.scores = append(r.scores, score)
	}
	return nil
}

func (r *fakeReviewRepo) ListScores(_ context.Context, reviewID string) ([]*entities.EvaluationScore, error) {
	var result []*entities.EvaluationScore
	for _, score := range r.scores {
		if score.ReviewID == reviewID {
			result = append(result, score)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) ListScoresByReviews(_ context.Context, reviewIDs []string) ([]*entities.EvaluationScore, error) {
	wanted := make(map[string]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}
	var result []*entities.EvaluationScore
	for _, score := range r.scores {
		if wanted[score.ReviewID] {
			result = append(result, score)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) DeleteScores(_ context.Context, reviewID string) error {
	kept := r.scores[:0]
	for _, score := range r.scores {
		if score.ReviewID != reviewID {
			kept = append(kept, score)
		}
	}
	r.scores = kept
	return nil
}

func (r *fakeReviewRepo) DeleteScoresByReviews(_ context.Context, reviewIDs []string) error {
	wanted := make(map[string]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}
	kept := r.scores[:0]
	for _, score := range r.scores {
		if !wanted[score.ReviewID] {
			kept = append(kept, score)
		}
	}
	r.scores = kept
	return nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entities.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*entities.Invitation)}
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *entities.Invitation) error {
	if invitation.ID == "" {
		invitation.ID = nextID("invite")
	}
	r.invitations[invitation.ID] = invitation
	return nil
}

func (r *fakeInvitationRepo) FindByID(_ context.Context, id string) (*entities.Invitation, error) {
	invitation, ok := r.invitations[id]
	if !ok {
		return nil, nil
	}
	return invitation, nil
}

func (r *fakeInvitationRepo) FindPending(_ context.Context, groupID, displayID string) (*entities.Invitation, error) {
	for _, invitation := range r.invitations {
		if invitation.ReviewGroupID == groupID && invitation.InvitedUserDisplayID == displayID && invitation.IsPending() {
			return invitation, nil
		}
	}
	return nil, nil
}

func (r *fakeInvitationRepo) ListPendingByDisplayID(_ context.Context, displayID string) ([]*entities.Invitation, error) {
	var result []*entities.Invitation
	for _, invitation := range r.invitations {
		if invitation.InvitedUserDisplayID == displayID && invitation.IsPending() {
			result = append(result, invitation)
		}
	}
	return result, nil
}

func (r *fakeInvitationRepo) Update(_ context.Context, invitation *entities.Invitation) error {
	r.invitations[invitation.ID] = invitation
	return nil
}

// world agrega todos os fakes para montar cenários de teste
type world struct {
	users       *fakeUserRepo
	categories  *fakeCategoryRepo
	groups      *fakeGroupRepo
	memberships *fakeMembershipRepo
	subjects    *fakeSubjectRepo
	reviews     *fakeReviewRepo
	invitations *fakeInvitationRepo
	uow         *fakeUow
	notifier    *fakeNotifier
	logger      *fakeLogger
}

func newWorld() *world {
	users := newFakeUserRepo()
	groups := newFakeGroupRepo()
	return &world{
		users:       users,
		categories:  &fakeCategoryRepo{},
		groups:      groups,
		memberships: &fakeMembershipRepo{users: users, groups: groups},
		subjects:    newFakeSubjectRepo(),
		reviews:     newFakeReviewRepo(),
		invitations: newFakeInvitationRepo(),
		uow:         &fakeUow{},
		notifier:    &fakeNotifier{},
		logger:      &fakeLogger{},
	}
}

func (w *world) seedCategory(name string) *entities.Category {
	category := &entities.Category{ID: nextID("cat"), Name: name}
	w.categories.categories = append(w.categories.categories, category)
	return category
}

func (w *world) seedGroup(categoryID string, criteriaNames ...string) *entities.ReviewGroup {
	group := &entities.ReviewGroup{
		ID:         nextID("group"),
		Name:       "テストグループ",
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	w.groups.groups[group.ID] = group
	for i, name := range criteriaNames {
		w.groups.criteria = append(w.groups.criteria, &entities.EvaluationCriterion{
			ID:            nextID("crit"),
			ReviewGroupID: group.ID,
			Name:          name,
			OrderIndex:    i,
		})
	}
	return group
}

func (w *world) seedMember(groupID, userID string, role entities.Role) *entities.Membership {
	membership := &entities.Membership{
		ID:            nextID("member"),
		ReviewGroupID: groupID,
		UserID:        userID,
		Role:          role,
		JoinedAt:      time.Now(),
	}
	w.memberships.memberships = append(w.memberships.memberships, membership)
	return membership
}

func (w *world) groupService() *GroupService {
	return NewGroupService(w.groups, w.memberships, w.categories, w.subjects, w.reviews, w.uow, w.logger)
}

func (w *world) membershipService() *MembershipService {
	return NewMembershipService(w.groups, w.memberships, w.invitations, w.users, w.uow, w.notifier, w.logger)
}

func (w *world) subjectService() *SubjectService {
	return NewSubjectService(w.groups, w.memberships, w.subjects, w.reviews, w.logger)
}

func (w *world) reviewService() *ReviewService {
	return NewReviewService(w.groups, w.memberships, w.subjects, w.reviews, w.uow, w.logger)
}
