package ports

// Logger abstrai o logger estruturado usado por serviços e handlers.
// Args seguem o formato chave/valor do slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
