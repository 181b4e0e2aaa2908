package storage

import (
	"context"
	"io"
)

// Storage defines the interface for uploaded file storage.
type Storage interface {
	// Save writes a file and returns its public URL and final name.
	Save(ctx context.Context, input *SaveInput) (*SaveResult, error)
}

// SaveInput holds the parameters for saving a file.
type SaveInput struct {
	// Target is the subdirectory under the public uploads root
	// (products, brands or sliders).
	Target string

	// FileName is the generated final file name.
	FileName string

	Data io.Reader
}

// SaveResult holds the result of a successful save.
type SaveResult struct {
	URL      string
	FileName string
}
