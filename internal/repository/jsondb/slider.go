package jsondb

import (
	"context"
	"sort"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

// SliderRepository implements repository.SliderRepository over the document store.
type SliderRepository struct {
	store *Store
}

// NewSliderRepository creates a document-store-backed slider repository.
func NewSliderRepository(store *Store) *SliderRepository {
	return &SliderRepository{store: store}
}

// List returns sliders sorted by order ascending, excluding inactive ones
// unless the filter includes them.
func (r *SliderRepository) List(ctx context.Context, filter repository.SliderFilter) ([]domain.Slider, error) {
	out := []domain.Slider{}
	err := r.store.View(ctx, func(doc *Document) error {
		for _, s := range doc.Sliders {
			if !filter.IncludeInactive && !s.Active {
				continue
			}
			out = append(out, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out, nil
}

// GetByID retrieves a slider by its identifier.
func (r *SliderRepository) GetByID(ctx context.Context, id string) (*domain.Slider, error) {
	var out *domain.Slider
	err := r.store.View(ctx, func(doc *Document) error {
		for i := range doc.Sliders {
			if doc.Sliders[i].ID == id {
				s := doc.Sliders[i]
				out = &s
				return nil
			}
		}
		return apperrors.NotFound("slider", id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create appends the slider and assigns Order as the current collection
// length + 1. Deletions never renumber, so orders can repeat; the slider
// passed in is updated with the assigned value.
func (r *SliderRepository) Create(ctx context.Context, slider *domain.Slider) error {
	return r.store.Update(ctx, func(doc *Document) error {
		slider.Order = len(doc.Sliders) + 1
		doc.Sliders = append(doc.Sliders, *slider)
		return nil
	})
}

// Update replaces the stored slider with the same ID.
func (r *SliderRepository) Update(ctx context.Context, slider *domain.Slider) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Sliders {
			if doc.Sliders[i].ID == slider.ID {
				doc.Sliders[i] = *slider
				return nil
			}
		}
		return apperrors.NotFound("slider", slider.ID)
	})
}

// Delete removes the slider with the given ID.
func (r *SliderRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Sliders {
			if doc.Sliders[i].ID == id {
				doc.Sliders = append(doc.Sliders[:i], doc.Sliders[i+1:]...)
				return nil
			}
		}
		return apperrors.NotFound("slider", id)
	})
}
