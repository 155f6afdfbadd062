package services

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
)

// ReviewService contém a lógica de negócio para reviews e scores
type ReviewService struct {
	groupRepo      repositories.ReviewGroupRepository
	membershipRepo repositories.MembershipRepository
	subjectRepo    repositories.SubjectRepository
	reviewRepo     repositories.ReviewRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	groupRepo repositories.ReviewGroupRepository,
	membershipRepo repositories.MembershipRepository,
	subjectRepo repositories.SubjectRepository,
	reviewRepo repositories.ReviewRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		subjectRepo:    subjectRepo,
		reviewRepo:     reviewRepo,
		uow:            uow,
		logger:         logger,
	}
}

// ReviewInput representa os dados para criar ou editar uma review.
// Scores mapeia ID do critério para a nota.
type ReviewInput struct {
	Comment *string
	Images  []string
	Scores  map[string]int
}

// ListReviews retorna as reviews do subject com autor e scores populados
func (s *ReviewService) ListReviews(ctx context.Context, userID, groupID, subjectID string) ([]*entities.Review, error) {
	if err := s.requireSubjectAccess(ctx, userID, groupID, subjectID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return reviews, nil
	}

	reviewIDs := make([]string, len(reviews))
	byID := make(map[string]*entities.Review, len(reviews))
	for i, review := range reviews {
		reviewIDs[i] = review.ID
		byID[review.ID] = review
	}

	scores, err := s.reviewRepo.ListScoresByReviews(ctx, reviewIDs)
	if err != nil {
		return nil, err
	}
	for _, score := range scores {
		if review, ok := byID[score.ReviewID]; ok {
			review.Scores = append(review.Scores, score)
		}
	}

	return reviews, nil
}

// GetMyReview retorna a review do usuário autenticado para o subject
// (usada na tela de edição)
func (s *ReviewService) GetMyReview(ctx context.Context, userID, groupID, subjectID string) (*entities.Review, error) {
	if err := s.requireSubjectAccess(ctx, userID, groupID, subjectID); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindActive(ctx, subjectID, userID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.ErrReviewNotFound
	}

	scores, err := s.reviewRepo.ListScores(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	review.Scores = scores
	return review, nil
}

// CreateReview cria a review do usuário para o subject com uma nota por
// critério. Review e scores são gravados em uma única transação.
// Cada usuário tem no máximo uma review ativa por subject.
func (s *ReviewService) CreateReview(ctx context.Context, userID, groupID, subjectID string, input ReviewInput) (*entities.Review, error) {
	if err := s.requireSubjectAccess(ctx, userID, groupID, subjectID); err != nil {
		return nil, err
	}

	criteria, err := s.groupRepo.ListCriteria(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := validateScores(criteria, input.Scores); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.FindActive(ctx, subjectID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrAlreadyReviewed
	}

	now := time.Now()
	review := &entities.Review{
		ReviewSubjectID: subjectID,
		UserID:          userID,
		Comment:         input.Comment,
		TotalScore:      entities.ComputeTotalScore(input.Scores),
		Images:          input.Images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.reviewRepo.Create(txCtx, review); err != nil {
			return err
		}
		return s.reviewRepo.CreateScores(txCtx, scoresFromInput(review.ID, input.Scores))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"subject_id", subjectID,
		"user_id", userID,
		"total_score", review.TotalScore,
	)
	return review, nil
}

// UpdateReview edita a review do próprio usuário. Os scores antigos são
// removidos e os novos inseridos na mesma transação.
func (s *ReviewService) UpdateReview(ctx context.Context, userID, groupID, subjectID string, input ReviewInput) (*entities.Review, error) {
	if err := s.requireSubjectAccess(ctx, userID, groupID, subjectID); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindActive(ctx, subjectID, userID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.ErrReviewNotFound
	}

	criteria, err := s.groupRepo.ListCriteria(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := validateScores(criteria, input.Scores); err != nil {
		return nil, err
	}

	review.Comment = input.Comment
	review.Images = input.Images
	review.TotalScore = entities.ComputeTotalScore(input.Scores)
	review.UpdatedAt = time.Now()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.reviewRepo.Update(txCtx, review); err != nil {
			return err
		}
		if err := s.reviewRepo.DeleteScores(txCtx, review.ID); err != nil {
			return err
		}
		return s.reviewRepo.CreateScores(txCtx, scoresFromInput(review.ID, input.Scores))
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview remove a review do próprio usuário: scores são removidos
// fisicamente e a review recebe soft delete, na mesma transação
func (s *ReviewService) DeleteReview(ctx context.Context, userID, groupID, subjectID string) error {
	if err := s.requireSubjectAccess(ctx, userID, groupID, subjectID); err != nil {
		return err
	}

	review, err := s.reviewRepo.FindActive(ctx, subjectID, userID)
	if err != nil {
		return err
	}
	if review == nil {
		return errors.ErrReviewNotFound
	}

	now := time.Now()
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.reviewRepo.DeleteScores(txCtx, review.ID); err != nil {
			return err
		}
		return s.reviewRepo.SoftDelete(txCtx, review.ID, now)
	})
	if err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", review.ID, "user_id", userID)
	return nil
}

// requireSubjectAccess exige que o usuário seja membro do grupo e que o
// subject exista dentro dele
func (s *ReviewService) requireSubjectAccess(ctx context.Context, userID, groupID, subjectID string) error {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil || group.IsDeleted() {
		return errors.ErrGroupNotFound
	}

	membership, err := s.membershipRepo.FindActive(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return errors.ErrNotMember
	}

	subject, err := s.subjectRepo.FindByID(ctx, groupID, subjectID)
	if err != nil {
		return err
	}
	if subject == nil {
		return errors.ErrSubjectNotFound
	}
	return nil
}

// validateScores exige exatamente uma nota válida para cada critério do grupo
func validateScores(criteria []*entities.EvaluationCriterion, scores map[string]int) error {
	known := make(map[string]bool, len(criteria))
	for _, criterion := range criteria {
		known[criterion.ID] = true
	}

	for criterionID, score := range scores {
		if !known[criterionID] {
			return errors.NewValidation("error.score_unknown_criterion", nil)
		}
		if !entities.IsValidScore(score) {
			return errors.NewValidation("error.score_out_of_range", nil)
		}
	}

	for _, criterion := range criteria {
		if _, ok := scores[criterion.ID]; !ok {
			return errors.NewValidation("error.score_missing", nil)
		}
	}
	return nil
}

// scoresFromInput monta as entidades de score a partir do mapa de entrada
func scoresFromInput(reviewID string, scores map[string]int) []*entities.EvaluationScore {
	result := make([]*entities.EvaluationScore, 0, len(scores))
	for criterionID, score := range scores {
		result = append(result, &entities.EvaluationScore{
			ReviewID:    reviewID,
			CriterionID: criterionID,
			Score:       score,
		})
	}
	return result
}
