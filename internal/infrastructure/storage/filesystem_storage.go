package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/revibako/backend/internal/domain/ports"
)

// FilesystemStorage implementa ports.ObjectStorage em disco local
// (driver para desenvolvimento e testes)
type FilesystemStorage struct {
	dir       string
	publicURL string
}

// NewFilesystemStorage cria o driver garantindo que o diretório existe
func NewFilesystemStorage(dir, publicURL string) (ports.ObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FilesystemStorage{
		dir:       dir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *FilesystemStorage) Put(_ context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	// Chaves são geradas pelo serviço; filepath.Base previne path traversal
	path := filepath.Join(s.dir, filepath.Base(key))

	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, filepath.Base(key)), nil
}
