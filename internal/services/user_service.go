package services

import (
	"context"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/domain/repositories"
	"github.com/revibako/backend/internal/domain/valueobjects"
	"github.com/revibako/backend/internal/infrastructure/auth"
)

// Tentativas de geração de handle antes de desistir.
// As primeiras usam 6 dígitos; esgotadas, o espaço é ampliado para 7.
const (
	handleAttemptsNarrow = 10
	handleAttemptsWide   = 10
)

// UserService contém a lógica de negócio para usuários e registro
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ResolveOAuthUser encontra ou cria o usuário correspondente ao perfil
// retornado pelo provider. Usuários novos ficam sem username até completarem
// o registro.
func (s *UserService) ResolveOAuthUser(ctx context.Context, profile *auth.Profile) (*entities.User, error) {
	email, err := valueobjects.NewEmail(profile.Email)
	if err != nil {
		return nil, errors.NewValidation("error.invalid_request_body", err)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Atualizar avatar a cada login; o provider é a fonte da verdade
		if profile.AvatarURL != "" {
			avatarURL := profile.AvatarURL
			existing.AvatarURL = &avatarURL
			existing.UpdatedAt = time.Now()
			if err := s.userRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	now := time.Now()
	user := &entities.User{
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if profile.AvatarURL != "" {
		avatarURL := profile.AvatarURL
		user.AvatarURL = &avatarURL
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created from oauth login", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// CompleteRegistration define o username escolhido e, se o usuário ainda não
// tem display handle, gera um único
func (s *UserService) CompleteRegistration(ctx context.Context, userID, username string) (*entities.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	validated, err := entities.ValidateUsername(username)
	if err != nil {
		return nil, errors.NewValidation("error.username_too_long", err)
	}

	if user.DisplayID.IsZero() {
		handle, err := s.generateUniqueHandle(ctx)
		if err != nil {
			return nil, err
		}
		user.DisplayID = handle
	}

	user.Username = validated
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("registration completed",
		"user_id", user.ID,
		"display_id", user.DisplayID.String(),
	)
	return user, nil
}

// UpdateProfile atualiza username e/ou avatar do usuário
func (s *UserService) UpdateProfile(ctx context.Context, userID string, username *string, avatarURL *string) (*entities.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != nil {
		validated, err := entities.ValidateUsername(*username)
		if err != nil {
			return nil, errors.NewValidation("error.username_too_long", err)
		}
		user.Username = validated
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateUniqueHandle sorteia handles até encontrar um livre, com limite de
// tentativas. Esgotado o espaço de 6 dígitos, tenta com 7.
func (s *UserService) generateUniqueHandle(ctx context.Context) (valueobjects.DisplayHandle, error) {
	for attempt := 0; attempt < handleAttemptsNarrow+handleAttemptsWide; attempt++ {
		wide := attempt >= handleAttemptsNarrow
		candidate := valueobjects.RandomDisplayHandle(wide)

		exists, err := s.userRepo.DisplayIDExists(ctx, candidate.String())
		if err != nil {
			return valueobjects.DisplayHandle{}, err
		}
		if !exists {
			return candidate, nil
		}
	}

	s.logger.Error("display handle space exhausted")
	return valueobjects.DisplayHandle{}, errors.ErrHandleExhausted
}
