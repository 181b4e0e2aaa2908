// Package jsondb persists the whole catalog as a single JSON document on
// disk. Every mutation is a load-mutate-save cycle over the full document;
// a mutex serializes cycles so concurrent writers cannot lose updates.
package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
)

// Document is the on-disk schema: four named collections, nothing else.
type Document struct {
	Products []domain.Product `json:"products"`
	Brands   []domain.Brand   `json:"brands"`
	Messages []domain.Message `json:"messages"`
	Sliders  []domain.Slider  `json:"sliders"`
}

// Store owns the backing file. All access goes through View and Update so
// that every load-mutate-save cycle holds the same lock.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by the JSON file at path. The file is not
// touched until Init or the first access.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Init creates the backing file with seed data if it does not exist, and
// migrates documents written by older versions (missing messages/sliders
// keys). Meant to be called once at startup so migration does not happen
// mid-request.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.load()
	return err
}

// Ping reports whether the backing document can be loaded. Used by the
// readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.load()
	return err
}

// View runs fn with a read-only snapshot of the document. Mutations made by
// fn are discarded.
func (s *Store) View(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn on the document and persists the result. If fn returns an
// error the document is not saved.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// load reads the document from disk. A missing file is created with the seed
// catalog; a document missing the messages or sliders keys (written by an
// older schema) is backfilled with empty lists and re-persisted.
// Callers must hold s.mu.
func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := seedDocument()
		if err := s.save(doc); err != nil {
			return nil, err
		}
		s.logger.Info("data file initialized with seed catalog",
			slog.String("path", s.path),
			slog.Int("products", len(doc.Products)),
			slog.Int("brands", len(doc.Brands)),
		)
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	// Pointer slices distinguish a missing key from an empty list.
	var raw struct {
		Products []domain.Product  `json:"products"`
		Brands   []domain.Brand    `json:"brands"`
		Messages *[]domain.Message `json:"messages"`
		Sliders  *[]domain.Slider  `json:"sliders"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}

	doc := &Document{
		Products: raw.Products,
		Brands:   raw.Brands,
	}
	drifted := false
	if raw.Messages != nil {
		doc.Messages = *raw.Messages
	} else {
		doc.Messages = []domain.Message{}
		drifted = true
	}
	if raw.Sliders != nil {
		doc.Sliders = *raw.Sliders
	} else {
		doc.Sliders = []domain.Slider{}
		drifted = true
	}

	if drifted {
		if err := s.save(doc); err != nil {
			return nil, err
		}
		s.logger.Info("data file migrated: backfilled missing collections",
			slog.String("path", s.path),
		)
	}

	return doc, nil
}

// save overwrites the backing file with the full document.
// Callers must hold s.mu.
func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}
