package jsondb

import (
	"context"
	"strings"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

// ProductRepository implements repository.ProductRepository over the document store.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates a document-store-backed product repository.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List returns products matching the filter in insertion order.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.store.View(ctx, func(doc *Document) error {
		for _, p := range doc.Products {
			if matchesProduct(p, filter) {
				out = append(out, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchesProduct(p domain.Product, filter repository.ProductFilter) bool {
	if filter.Category != nil && *filter.Category != domain.CategoryAll && p.Category != *filter.Category {
		return false
	}
	if filter.BrandID != nil && p.BrandID != *filter.BrandID {
		return false
	}
	if filter.Query != nil {
		q := strings.ToLower(*filter.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	err := r.store.View(ctx, func(doc *Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				p := doc.Products[i]
				out = &p
				return nil
			}
		}
		return apperrors.NotFound("product", id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create appends the product to the collection.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.store.Update(ctx, func(doc *Document) error {
		doc.Products = append(doc.Products, *product)
		return nil
	})
}

// Update replaces the stored product with the same ID.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == product.ID {
				doc.Products[i] = *product
				return nil
			}
		}
		return apperrors.NotFound("product", product.ID)
	})
}

// Delete removes the product with the given ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				return nil
			}
		}
		return apperrors.NotFound("product", id)
	})
}
