package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/storage"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
	"github.com/kuvvetliisik/pharma-showcase/pkg/slug"
)

// UploadService validates image uploads and hands them to storage.
type UploadService struct {
	storage storage.Storage
	logger  *slog.Logger
	nowFunc func() time.Time // injectable clock for testing
}

// NewUploadService creates a new upload service.
func NewUploadService(store storage.Storage, logger *slog.Logger) *UploadService {
	return &UploadService{
		storage: store,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// UploadInput holds the parameters for uploading a file.
type UploadInput struct {
	// Target is the destination subdirectory. Empty defaults to products.
	Target      string
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// Upload validates the input and writes the file. All validation happens
// before any byte reaches storage.
func (s *UploadService) Upload(ctx context.Context, input *UploadInput) (*storage.SaveResult, error) {
	target := input.Target
	if target == "" {
		target = domain.UploadTargetProducts
	}

	// Targets become path segments, so reject anything outside the known set.
	if !domain.IsValidUploadTarget(target) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("upload target %q is not allowed", target))
	}

	if !domain.IsAllowedContentType(input.ContentType) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("content type %q is not allowed; use JPEG, PNG, WebP or GIF", input.ContentType))
	}

	if input.Size > domain.MaxUploadSize {
		return nil, apperrors.InvalidInput(fmt.Sprintf("file size %d exceeds maximum allowed size of %d bytes", input.Size, domain.MaxUploadSize))
	}

	if input.Size <= 0 {
		return nil, apperrors.InvalidInput("file size must be greater than zero")
	}

	if input.FileName == "" {
		return nil, apperrors.InvalidInput("file name is required")
	}

	fileName := s.generateFileName(input.FileName)

	result, err := s.storage.Save(ctx, &storage.SaveInput{
		Target:   target,
		FileName: fileName,
		Data:     input.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	s.logger.InfoContext(ctx, "file uploaded",
		slog.String("target", target),
		slog.String("file_name", result.FileName),
		slog.String("content_type", input.ContentType),
		slog.Int64("size", input.Size),
	)

	return result, nil
}

// generateFileName prefixes a millisecond timestamp to the sanitized
// original name so successive uploads of the same file never collide.
func (s *UploadService) generateFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	stem := slug.Generate(strings.TrimSuffix(original, filepath.Ext(original)))
	if stem == "" {
		stem = "file"
	}
	return fmt.Sprintf("%d-%s%s", s.nowFunc().UnixMilli(), stem, ext)
}
