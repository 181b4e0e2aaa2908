// Package memory implements storage.Storage in memory, for tests.
package memory

import (
	"context"
	"io"
	"path"
	"sync"

	"github.com/kuvvetliisik/pharma-showcase/internal/storage"
)

// Storage keeps uploaded file contents in a map keyed by target/fileName.
type Storage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{files: make(map[string][]byte)}
}

// Save stores the file bytes in memory.
func (s *Storage) Save(_ context.Context, input *storage.SaveInput) (*storage.SaveResult, error) {
	data, err := io.ReadAll(input.Data)
	if err != nil {
		return nil, err
	}

	key := path.Join(input.Target, input.FileName)

	s.mu.Lock()
	s.files[key] = data
	s.mu.Unlock()

	return &storage.SaveResult{
		URL:      path.Join("/uploads", input.Target, input.FileName),
		FileName: input.FileName,
	}, nil
}

// Len returns the number of stored files (used in tests).
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// Get returns the stored bytes for target/fileName, and whether they exist.
func (s *Storage) Get(target, fileName string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[path.Join(target, fileName)]
	return data, ok
}
