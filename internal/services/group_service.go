package services

import (
	"context"
	"strings"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
)

// GroupService contém a lógica de negócio para grupos de avaliação
type GroupService struct {
	groupRepo      repositories.ReviewGroupRepository
	membershipRepo repositories.MembershipRepository
	categoryRepo   repositories.CategoryRepository
	subjectRepo    repositories.SubjectRepository
	reviewRepo     repositories.ReviewRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewGroupService cria um novo GroupService
func NewGroupService(
	groupRepo repositories.ReviewGroupRepository,
	membershipRepo repositories.MembershipRepository,
	categoryRepo repositories.CategoryRepository,
	subjectRepo repositories.SubjectRepository,
	reviewRepo repositories.ReviewRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *GroupService {
	return &GroupService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		categoryRepo:   categoryRepo,
		subjectRepo:    subjectRepo,
		reviewRepo:     reviewRepo,
		uow:            uow,
		logger:         logger,
	}
}

// CreateGroupInput representa os dados para criar um grupo
type CreateGroupInput struct {
	Name           string
	Description    *string
	CategoryID     string
	IsPrivate      bool
	ImageURL       *string
	MetadataFields []entities.MetadataField
	Criteria       []string
}

// UpdateGroupInput representa os dados para atualizar as configurações
// de um grupo. Critérios, categoria e schema de metadados não são
// alteráveis depois da criação.
type UpdateGroupInput struct {
	Name        string
	Description *string
	IsPrivate   bool
	ImageURL    *string
}

// GroupDetail agrega o grupo com dados derivados para exibição
type GroupDetail struct {
	Group       *entities.ReviewGroup
	MemberCount int64
	Role        entities.Role
	Criteria    []*entities.EvaluationCriterion
}

// CreateGroup cria o grupo, o vínculo de owner e os critérios em uma única
// transação
func (s *GroupService) CreateGroup(ctx context.Context, userID string, input CreateGroupInput) (*entities.ReviewGroup, error) {
	name, err := entities.ValidateGroupName(input.Name)
	if err != nil {
		return nil, errors.NewValidation("error.group_name_too_long", err)
	}
	description, err := entities.ValidateGroupDescription(input.Description)
	if err != nil {
		return nil, errors.NewValidation("error.group_description_too_long", err)
	}

	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrInvalidCategory
	}

	criteriaNames := normalizeCriteriaNames(input.Criteria)
	if len(criteriaNames) == 0 {
		return nil, errors.NewValidation("error.criteria_required", nil)
	}

	now := time.Now()
	group := &entities.ReviewGroup{
		Name:           name,
		Description:    description,
		CategoryID:     category.ID,
		IsPrivate:      input.IsPrivate,
		ImageURL:       input.ImageURL,
		MetadataFields: input.MetadataFields,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.groupRepo.Create(txCtx, group); err != nil {
			return err
		}

		owner := &entities.Membership{
			ReviewGroupID: group.ID,
			UserID:        userID,
			Role:          entities.RoleOwner,
			JoinedAt:      now,
		}
		if err := s.membershipRepo.Create(txCtx, owner); err != nil {
			return err
		}

		criteria := make([]*entities.EvaluationCriterion, len(criteriaNames))
		for i, criterionName := range criteriaNames {
			criteria[i] = &entities.EvaluationCriterion{
				ReviewGroupID: group.ID,
				Name:          criterionName,
				OrderIndex:    i,
				CreatedAt:     now,
			}
		}
		return s.groupRepo.CreateCriteria(txCtx, criteria)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("review group created",
		"group_id", group.ID,
		"owner_id", userID,
		"criteria", len(criteriaNames),
	)

	group.Category = category
	return group, nil
}

// ListGroups retorna os grupos dos quais o usuário é membro
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*entities.Membership, error) {
	return s.membershipRepo.ListByUser(ctx, userID)
}

// GetGroup retorna o grupo com contagem de membros, papel do usuário e
// critérios. Somente membros enxergam o grupo.
func (s *GroupService) GetGroup(ctx context.Context, userID, groupID string) (*GroupDetail, error) {
	group, membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.membershipRepo.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	criteria, err := s.groupRepo.ListCriteria(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &GroupDetail{
		Group:       group,
		MemberCount: memberCount,
		Role:        membership.Role,
		Criteria:    criteria,
	}, nil
}

// UpdateSettings atualiza as configurações do grupo. Somente o owner pode.
func (s *GroupService) UpdateSettings(ctx context.Context, userID, groupID string, input UpdateGroupInput) (*entities.ReviewGroup, error) {
	group, membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	if !membership.Role.CanManageGroup() {
		return nil, errors.ErrNotOwner
	}

	name, err := entities.ValidateGroupName(input.Name)
	if err != nil {
		return nil, errors.NewValidation("error.group_name_too_long", err)
	}
	description, err := entities.ValidateGroupDescription(input.Description)
	if err != nil {
		return nil, errors.NewValidation("error.group_description_too_long", err)
	}

	group.Name = name
	group.Description = description
	group.IsPrivate = input.IsPrivate
	group.ImageURL = input.ImageURL
	group.UpdatedAt = time.Now()

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// DeleteGroup remove o grupo e tudo que pertence a ele em uma única
// transação: vínculos, critérios, subjects e reviews recebem soft delete;
// scores são removidos fisicamente.
func (s *GroupService) DeleteGroup(ctx context.Context, userID, groupID string) error {
	_, membership, err := s.requireMembership(ctx, userID, groupID)
	if err != nil {
		return err
	}
	if !membership.Role.CanManageGroup() {
		return errors.ErrNotOwner
	}

	now := time.Now()
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		subjectIDs, err := s.subjectRepo.ListIDsByGroup(txCtx, groupID)
		if err != nil {
			return err
		}

		if len(subjectIDs) > 0 {
			reviewIDs, err := s.reviewRepo.ListActiveIDsBySubjects(txCtx, subjectIDs)
			if err != nil {
				return err
			}
			if len(reviewIDs) > 0 {
				if err := s.reviewRepo.DeleteScoresByReviews(txCtx, reviewIDs); err != nil {
					return err
				}
				if err := s.reviewRepo.SoftDeleteByIDs(txCtx, reviewIDs, now); err != nil {
					return err
				}
			}
			if err := s.subjectRepo.SoftDeleteByGroup(txCtx, groupID, now); err != nil {
				return err
			}
		}

		if err := s.groupRepo.SoftDeleteCriteriaByGroup(txCtx, groupID, now); err != nil {
			return err
		}
		if err := s.membershipRepo.SoftDeleteByGroup(txCtx, groupID, now); err != nil {
			return err
		}
		return s.groupRepo.SoftDelete(txCtx, groupID, now)
	})
	if err != nil {
		return err
	}

	s.logger.Info("review group deleted", "group_id", groupID, "owner_id", userID)
	return nil
}

// requireMembership carrega o grupo e exige vínculo ativo do usuário
func (s *GroupService) requireMembership(ctx context.Context, userID, groupID string) (*entities.ReviewGroup, *entities.Membership, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil || group.IsDeleted() {
		return nil, nil, errors.ErrGroupNotFound
	}

	membership, err := s.membershipRepo.FindActive(ctx, groupID, userID)
	if err != nil {
		return nil, nil, err
	}
	if membership == nil {
		return nil, nil, errors.ErrNotMember
	}

	return group, membership, nil
}

// normalizeCriteriaNames remove nomes vazios e espaços extras, preservando
// a ordem de entrada
func normalizeCriteriaNames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
