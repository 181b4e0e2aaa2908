package jsondb

import (
	"context"
	"sort"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

// MessageRepository implements repository.MessageRepository over the document store.
type MessageRepository struct {
	store *Store
}

// NewMessageRepository creates a document-store-backed message repository.
func NewMessageRepository(store *Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// List returns all messages sorted by date descending (newest first).
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	out := []domain.Message{}
	err := r.store.View(ctx, func(doc *Document) error {
		out = append(out, doc.Messages...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// GetByID retrieves a message by its identifier.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var out *domain.Message
	err := r.store.View(ctx, func(doc *Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				m := doc.Messages[i]
				out = &m
				return nil
			}
		}
		return apperrors.NotFound("message", id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create appends the message to the collection.
func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	return r.store.Update(ctx, func(doc *Document) error {
		doc.Messages = append(doc.Messages, *message)
		return nil
	})
}

// Update replaces the stored message with the same ID.
func (r *MessageRepository) Update(ctx context.Context, message *domain.Message) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == message.ID {
				doc.Messages[i] = *message
				return nil
			}
		}
		return apperrors.NotFound("message", message.ID)
	})
}

// Delete removes the message with the given ID.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				doc.Messages = append(doc.Messages[:i], doc.Messages[i+1:]...)
				return nil
			}
		}
		return apperrors.NotFound("message", id)
	})
}
