package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/revibako/backend/internal/domain/ports"
	"github.com/revibako/backend/internal/handlers/middleware"
)

const writeTimeout = 10 * time.Second

// Hub mantém as conexões WebSocket ativas por usuário e entrega eventos
// em tempo real (convites). A entrega é best-effort: se o usuário não
// está conectado, o evento é descartado.
type Hub struct {
	mu       sync.RWMutex
	writeMu  sync.Mutex // gorilla exige um único writer por conexão
	conns    map[string]map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		conns: make(map[string]map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A autenticação acontece no middleware; a origem é liberada
			// porque o token já foi validado
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeWS faz o upgrade da conexão e a registra para o usuário autenticado
func (h *Hub) ServeWS(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	if userID == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.register(userID, conn)
	h.logger.Debug("websocket connected", "user_id", userID)

	// O servidor só envia; o read loop existe para detectar o fechamento
	go func() {
		defer func() {
			h.unregister(userID, conn)
			conn.Close()
			h.logger.Debug("websocket disconnected", "user_id", userID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Notify entrega o evento para todas as conexões do usuário
func (h *Hub) Notify(userID string, event any) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("websocket delivery failed", "user_id", userID, "error", err)
			h.unregister(userID, conn)
			conn.Close()
		}
	}
}

func (h *Hub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[userID][conn] = struct{}{}
}

func (h *Hub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.conns[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.conns, userID)
		}
	}
}
