package repository

import (
	"context"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
)

// ProductFilter defines filter criteria for listing products.
// Nil fields mean "no filter". A Category equal to domain.CategoryAll is
// treated the same as nil.
type ProductFilter struct {
	Category *string
	BrandID  *string
	Query    *string
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// List returns products matching the given filter, in insertion order.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// Create appends a new product to the collection.
	Create(ctx context.Context, product *domain.Product) error

	// Update replaces the stored product with the same ID.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id string) error
}

// BrandRepository defines the interface for brand persistence operations.
// Deleting a brand does not touch products that reference it.
type BrandRepository interface {
	// ListAll returns every brand in insertion order.
	ListAll(ctx context.Context) ([]domain.Brand, error)

	// GetByID retrieves a brand by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Brand, error)

	// Create appends a new brand to the collection.
	Create(ctx context.Context, brand *domain.Brand) error

	// Update replaces the stored brand with the same ID.
	Update(ctx context.Context, brand *domain.Brand) error

	// Delete removes a brand by its identifier.
	Delete(ctx context.Context, id string) error
}

// MessageRepository defines the interface for contact message persistence.
type MessageRepository interface {
	// List returns all messages sorted by date descending (newest first).
	List(ctx context.Context) ([]domain.Message, error)

	// GetByID retrieves a message by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Message, error)

	// Create appends a new message to the collection.
	Create(ctx context.Context, message *domain.Message) error

	// Update replaces the stored message with the same ID.
	Update(ctx context.Context, message *domain.Message) error

	// Delete removes a message by its identifier.
	Delete(ctx context.Context, id string) error
}

// SliderFilter defines filter criteria for listing sliders.
type SliderFilter struct {
	// IncludeInactive returns inactive sliders too when set (admin view).
	IncludeInactive bool
}

// SliderRepository defines the interface for slider persistence operations.
type SliderRepository interface {
	// List returns sliders sorted by order ascending. Inactive sliders are
	// excluded unless the filter includes them.
	List(ctx context.Context, filter SliderFilter) ([]domain.Slider, error)

	// GetByID retrieves a slider by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Slider, error)

	// Create appends a new slider, assigning Order as the current collection
	// length + 1. Order is never renumbered afterwards.
	Create(ctx context.Context, slider *domain.Slider) error

	// Update replaces the stored slider with the same ID.
	Update(ctx context.Context, slider *domain.Slider) error

	// Delete removes a slider by its identifier.
	Delete(ctx context.Context, id string) error
}
