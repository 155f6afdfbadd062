package ports

import (
	"context"
	"io"
)

// ObjectStorage define a interface para o bucket de imagens
type ObjectStorage interface {
	// Put grava um objeto e retorna a URL pública
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}
