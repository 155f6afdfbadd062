package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrStateNotFound = errors.New("oauth state not found or expired")

const (
	statePrefix   = "oauth:state:"
	revokedPrefix = "session:revoked:"
)

// SessionStore guarda estado efêmero de sessão no Redis: nonces de OAuth
// e jtis revogados no logout. Não é cache de dados do banco.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore cria um SessionStore a partir da URL do Redis
func NewSessionStore(url string) (*SessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &SessionStore{client: redis.NewClient(opts)}, nil
}

// NewSessionStoreWithClient cria um SessionStore com um client existente
// (usado em testes com miniredis)
func NewSessionStoreWithClient(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveState registra o nonce do fluxo OAuth com TTL
func (s *SessionStore) SaveState(ctx context.Context, state, provider string, ttl time.Duration) error {
	return s.client.Set(ctx, statePrefix+state, provider, ttl).Err()
}

// ConsumeState valida e remove o nonce, retornando o provider associado
func (s *SessionStore) ConsumeState(ctx context.Context, state string) (string, error) {
	provider, err := s.client.GetDel(ctx, statePrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrStateNotFound
	}
	if err != nil {
		return "", err
	}
	return provider, nil
}

// RevokeToken marca o jti como revogado até a expiração do token
func (s *SessionStore) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

// IsRevoked verifica se o jti foi revogado
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.Get(ctx, revokedPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
