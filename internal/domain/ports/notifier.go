package ports

// Notifier entrega eventos em tempo real para um usuário conectado.
// A entrega é best-effort: usuários sem conexão ativa não recebem nada.
type Notifier interface {
	Notify(userID string, event any)
}
