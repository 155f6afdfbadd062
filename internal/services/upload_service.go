package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/revibako/backend/internal/domain/errors"
	"github.com/revibako/backend/internal/domain/ports"
)

// MaxUploadSize é o tamanho máximo aceito para imagens (5 MB)
const MaxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService grava imagens no object storage
type UploadService struct {
	storage ports.ObjectStorage
	logger  ports.Logger
}

// NewUploadService cria um novo UploadService
func NewUploadService(storage ports.ObjectStorage, logger ports.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		logger:  logger,
	}
}

// UploadImage valida e grava a imagem, retornando a URL pública.
// A chave do objeto é derivada do usuário e do instante do upload.
func (s *UploadService) UploadImage(ctx context.Context, userID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if size <= 0 {
		return "", errors.NewValidation("error.file_required", nil)
	}
	if size > MaxUploadSize {
		return "", errors.NewValidation("error.file_too_large", nil)
	}
	if !allowedImageTypes[contentType] {
		return "", errors.NewValidation("error.invalid_file_type", nil)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = extensionForContentType(contentType)
	}

	key := fmt.Sprintf("%s_%d%s", userID, time.Now().UnixMilli(), ext)

	url, err := s.storage.Put(ctx, key, reader, size, contentType)
	if err != nil {
		return "", err
	}

	s.logger.Info("image uploaded", "user_id", userID, "key", key)
	return url, nil
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
