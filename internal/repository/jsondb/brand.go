package jsondb

import (
	"context"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

// BrandRepository implements repository.BrandRepository over the document store.
type BrandRepository struct {
	store *Store
}

// NewBrandRepository creates a document-store-backed brand repository.
func NewBrandRepository(store *Store) *BrandRepository {
	return &BrandRepository{store: store}
}

// ListAll returns every brand in insertion order.
func (r *BrandRepository) ListAll(ctx context.Context) ([]domain.Brand, error) {
	out := []domain.Brand{}
	err := r.store.View(ctx, func(doc *Document) error {
		out = append(out, doc.Brands...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a brand by its identifier.
func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	var out *domain.Brand
	err := r.store.View(ctx, func(doc *Document) error {
		for i := range doc.Brands {
			if doc.Brands[i].ID == id {
				b := doc.Brands[i]
				out = &b
				return nil
			}
		}
		return apperrors.NotFound("brand", id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create appends the brand to the collection.
func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	return r.store.Update(ctx, func(doc *Document) error {
		doc.Brands = append(doc.Brands, *brand)
		return nil
	})
}

// Update replaces the stored brand with the same ID.
func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Brands {
			if doc.Brands[i].ID == brand.ID {
				doc.Brands[i] = *brand
				return nil
			}
		}
		return apperrors.NotFound("brand", brand.ID)
	})
}

// Delete removes the brand with the given ID. Products referencing the brand
// are left untouched; dangling BrandID values are documented behavior.
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Brands {
			if doc.Brands[i].ID == id {
				doc.Brands = append(doc.Brands[:i], doc.Brands[i+1:]...)
				return nil
			}
		}
		return apperrors.NotFound("brand", id)
	})
}
