package services

import (
	"context"
	"math"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
)

// SubjectService contém a lógica de negócio para subjects de avaliação
type SubjectService struct {
	groupRepo      repositories.ReviewGroupRepository
	membershipRepo repositories.MembershipRepository
	subjectRepo    repositories.SubjectRepository
	reviewRepo     repositories.ReviewRepository
	logger         ports.Logger
}

// NewSubjectService cria um novo SubjectService
func NewSubjectService(
	groupRepo repositories.ReviewGroupRepository,
	membershipRepo repositories.MembershipRepository,
	subjectRepo repositories.SubjectRepository,
	reviewRepo repositories.ReviewRepository,
	logger ports.Logger,
) *SubjectService {
	return &SubjectService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		subjectRepo:    subjectRepo,
		reviewRepo:     reviewRepo,
		logger:         logger,
	}
}

// SubjectInput representa os dados para criar ou editar um subject
type SubjectInput struct {
	Name     string
	Images   []string
	Metadata map[string]any
}

// SubjectSummary agrega um subject com estatísticas para listagem
type SubjectSummary struct {
	Subject      *entities.ReviewSubject
	ReviewCount  int
	AverageScore float64
}

// CriterionAverage é a média de um critério entre todas as reviews do subject
type CriterionAverage struct {
	CriterionID   string
	CriterionName string
	Average       float64
}

// SubjectDetail agrega o subject com as estatísticas da tela de detalhe
type SubjectDetail struct {
	Subject      *entities.ReviewSubject
	Group        *entities.ReviewGroup
	Criteria     []*entities.EvaluationCriterion
	Role         entities.Role
	ReviewCount  int
	AverageScore float64
	Breakdown    []CriterionAverage
}

// CreateSubject cria um subject no grupo. Qualquer membro pode criar.
func (s *SubjectService) CreateSubject(ctx context.Context, userID, groupID string, input SubjectInput) (*entities.ReviewSubject, error) {
	if _, err := s.requireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}

	name, err := entities.ValidateSubjectName(input.Name)
	if err != nil {
		return nil, errors.NewValidation("error.subject_name_too_long", err)
	}

	now := time.Now()
	subject := &entities.ReviewSubject{
		ReviewGroupID: groupID,
		Name:          name,
		Images:        input.Images,
		Metadata:      input.Metadata,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Info("subject created", "subject_id", subject.ID, "group_id", groupID)
	return subject, nil
}

// ListSubjects retorna os subjects do grupo com contagem e média de reviews
func (s *SubjectService) ListSubjects(ctx context.Context, userID, groupID string) ([]*SubjectSummary, error) {
	if _, err := s.requireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}

	subjects, err := s.subjectRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*SubjectSummary, len(subjects))
	for i, subject := range subjects {
		reviews, err := s.reviewRepo.ListBySubject(ctx, subject.ID)
		if err != nil {
			return nil, err
		}
		summaries[i] = &SubjectSummary{
			Subject:      subject,
			ReviewCount:  len(reviews),
			AverageScore: averageTotalScore(reviews),
		}
	}
	return summaries, nil
}

// GetSubject retorna o subject com as estatísticas da tela de detalhe:
// contagem de reviews, média geral e média por critério
func (s *SubjectService) GetSubject(ctx context.Context, userID, groupID, subjectID string) (*SubjectDetail, error) {
	membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	subject, err := s.findSubject(ctx, groupID, subjectID)
	if err != nil {
		return nil, err
	}

	criteria, err := s.groupRepo.ListCriteria(ctx, groupID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	reviewIDs := make([]string, len(reviews))
	for i, review := range reviews {
		reviewIDs[i] = review.ID
	}

	var scores []*entities.EvaluationScore
	if len(reviewIDs) > 0 {
		scores, err = s.reviewRepo.ListScoresByReviews(ctx, reviewIDs)
		if err != nil {
			return nil, err
		}
	}

	return &SubjectDetail{
		Subject:      subject,
		Group:        membership.Group,
		Criteria:     criteria,
		Role:         membership.Role,
		ReviewCount:  len(reviews),
		AverageScore: averageTotalScore(reviews),
		Breakdown:    criterionBreakdown(criteria, scores),
	}, nil
}

// UpdateSubject edita o subject. Permitido para owner, admin ou o criador.
func (s *SubjectService) UpdateSubject(ctx context.Context, userID, groupID, subjectID string, input SubjectInput) (*entities.ReviewSubject, error) {
	membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	subject, err := s.findSubject(ctx, groupID, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.CanBeEditedBy(membership) {
		return nil, errors.ErrCannotEditSubject
	}

	name, err := entities.ValidateSubjectName(input.Name)
	if err != nil {
		return nil, errors.NewValidation("error.subject_name_too_long", err)
	}

	subject.Name = name
	subject.Images = input.Images
	subject.Metadata = input.Metadata
	subject.UpdatedAt = time.Now()

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject remove o subject (soft delete). Permitido para owner, admin
// ou o criador, e somente quando o subject não tem reviews ativas.
func (s *SubjectService) DeleteSubject(ctx context.Context, userID, groupID, subjectID string) error {
	membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return err
	}

	subject, err := s.findSubject(ctx, groupID, subjectID)
	if err != nil {
		return err
	}
	if !subject.CanBeEditedBy(membership) {
		return errors.ErrCannotEditSubject
	}

	reviewCount, err := s.reviewRepo.CountBySubject(ctx, subjectID)
	if err != nil {
		return err
	}
	if reviewCount > 0 {
		return errors.ErrSubjectHasReviews
	}

	if err := s.subjectRepo.SoftDelete(ctx, subjectID, time.Now()); err != nil {
		return err
	}

	s.logger.Info("subject deleted", "subject_id", subjectID, "group_id", groupID)
	return nil
}

func (s *SubjectService) findSubject(ctx context.Context, groupID, subjectID string) (*entities.ReviewSubject, error) {
	subject, err := s.subjectRepo.FindByID(ctx, groupID, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, errors.ErrSubjectNotFound
	}
	return subject, nil
}

func (s *SubjectService) requireMembership(ctx context.Context, userID, groupID string) (*entities.Membership, error) {
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

// averageTotalScore calcula a média dos total scores, arredondada para
// 2 casas decimais. Zero quando não há reviews.
func averageTotalScore(reviews []*entities.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, review := range reviews {
		sum += review.TotalScore
	}
	return math.Round(sum/float64(len(reviews))*100) / 100
}

// criterionBreakdown calcula a média por critério na ordem dos critérios
// do grupo. Critérios sem nenhuma nota ficam com média zero.
func criterionBreakdown(criteria []*entities.EvaluationCriterion, scores []*entities.EvaluationScore) []CriterionAverage {
	sums := make(map[string]int, len(criteria))
	counts := make(map[string]int, len(criteria))
	for _, score := range scores {
		sums[score.CriterionID] += score.Score
		counts[score.CriterionID]++
	}

	result := make([]CriterionAverage, len(criteria))
	for i, criterion := range criteria {
		avg := 0.0
		if counts[criterion.ID] > 0 {
			avg = math.Round(float64(sums[criterion.ID])/float64(counts[criterion.ID])*100) / 100
		}
		result[i] = CriterionAverage{
			CriterionID:   criterion.ID,
			CriterionName: criterion.Name,
			Average:       avg,
		}
	}
	return result
}
