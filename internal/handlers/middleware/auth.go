package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/handlers/dto"
	"github.com/revibako/backend/internal/infrastructure/auth"
)

const (
	// ClaimsContextKey é a chave usada para armazenar as claims no contexto do Gin
	ClaimsContextKey = "session_claims"
)

// AuthMiddleware valida o token de sessão e popula a identidade do chamador
type AuthMiddleware struct {
	tokens   *auth.TokenManager
	sessions *auth.SessionStore
	logger   ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager, sessions *auth.SessionStore, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth exige um token de sessão válido e não revogado.
// O token vem do header Authorization (Bearer) ou, para a conexão
// WebSocket, do query parameter token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			abortUnauthorized(c, "error.invalid_token")
			return
		}

		revoked, err := m.sessions.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Error("failed to check token revocation", "error", err)
			response := dto.InternalErrorResponseI18n(c)
			c.Header("Content-Type", "application/problem+json")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response)
			return
		}
		if revoked {
			abortUnauthorized(c, "error.invalid_token")
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom retorna as claims da sessão autenticada no contexto
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// UserIDFrom retorna o ID do usuário autenticado no contexto
func UserIDFrom(c *gin.Context) string {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return ""
	}
	return claims.UserID
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// WebSocket não envia headers customizados no handshake do browser
	return c.Query("token")
}

func abortUnauthorized(c *gin.Context, detailKey string) {
	response := dto.UnauthorizedErrorResponseI18n(c, detailKey)
	c.Header("Content-Type", "application/problem+json")
	c.AbortWithStatusJSON(http.StatusUnauthorized, response)
}
