// Package disk stores uploaded files under a public uploads directory,
// namespaced by target subdirectory. The returned URL is the path the HTTP
// layer serves the directory under.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/kuvvetliisik/pharma-showcase/internal/storage"
)

// PublicPrefix is the URL path uploads are served under.
const PublicPrefix = "/uploads"

// Storage implements storage.Storage on the local filesystem.
type Storage struct {
	root string
}

// New creates a disk storage rooted at the given directory.
func New(root string) *Storage {
	return &Storage{root: root}
}

// Root returns the filesystem directory uploads are written to.
func (s *Storage) Root() string {
	return s.root
}

// Save writes the file to <root>/<target>/<fileName>, creating directories
// as needed.
func (s *Storage) Save(ctx context.Context, input *storage.SaveInput) (*storage.SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, input.Target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	dst := filepath.Join(dir, input.FileName)
	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, input.Data); err != nil {
		// Remove the partial file so a failed upload leaves nothing behind.
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &storage.SaveResult{
		URL:      path.Join(PublicPrefix, input.Target, input.FileName),
		FileName: input.FileName,
	}, nil
}
