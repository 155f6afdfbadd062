package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/infrastructure/auth"
)

// Tempo de vida do state anti-CSRF do fluxo OAuth
const oauthStateTTL = 10 * time.Minute

// AuthService orquestra o fluxo de login OAuth e a emissão de sessões
type AuthService struct {
	oauth    *auth.OAuthService
	sessions *auth.SessionStore
	tokens   *auth.TokenManager
	users    *UserService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	oauth *auth.OAuthService,
	sessions *auth.SessionStore,
	tokens *auth.TokenManager,
	users *UserService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		oauth:    oauth,
		sessions: sessions,
		tokens:   tokens,
		users:    users,
		logger:   logger,
	}
}

// LoginResult é o resultado do callback OAuth
type LoginResult struct {
	User          *entities.User
	Token         string
	ExpiresAt     time.Time
	NeedsUsername bool
}

// BeginLogin gera o state anti-CSRF, persiste com TTL e retorna a URL de
// autorização do provider
func (s *AuthService) BeginLogin(ctx context.Context, provider string) (string, error) {
	p, err := s.oauth.Provider(provider)
	if err != nil {
		return "", err
	}

	state, err := randomState()
	if err != nil {
		return "", err
	}

	if err := s.sessions.SaveState(ctx, state, provider, oauthStateTTL); err != nil {
		return "", err
	}

	return p.AuthCodeURL(state), nil
}

// CompleteLogin valida o state, troca o code por token, resolve o usuário
// e emite o JWT de sessão
func (s *AuthService) CompleteLogin(ctx context.Context, state, code string) (*LoginResult, error) {
	provider, err := s.sessions.ConsumeState(ctx, state)
	if err != nil {
		return nil, err
	}

	p, err := s.oauth.Provider(provider)
	if err != nil {
		return nil, err
	}

	oauthToken, err := p.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("oauth code exchange failed", "provider", provider, "error", err)
		return nil, err
	}

	profile, err := p.FetchProfile(ctx, oauthToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.ResolveOAuthUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, _, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "provider", provider)

	return &LoginResult{
		User:          user,
		Token:         token,
		ExpiresAt:     expiresAt,
		NeedsUsername: user.NeedsUsername(),
	}, nil
}

// Logout revoga a sessão atual pelo jti até a expiração natural do token
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.sessions.RevokeToken(ctx, jti, expiresAt)
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
