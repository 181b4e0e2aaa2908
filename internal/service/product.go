package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name        string
	BrandID     string
	Category    string
	Description string
	Image       string
}

// UpdateProductInput holds the parameters for updating a product.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	BrandID     *string
	Category    *string
	Description *string
	Image       *string
}

// CreateProduct creates a new product. Empty optional fields get defaults:
// category "Genel" and the placeholder image.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.BrandID == "" {
		return nil, apperrors.InvalidInput("product brand id is required")
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		BrandID:     input.BrandID,
		Category:    input.Category,
		Description: input.Description,
		Image:       input.Image,
	}
	if product.Category == "" {
		product.Category = domain.DefaultCategory
	}
	if product.Image == "" {
		product.Image = domain.PlaceholderProductImage
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("brand_id", product.BrandID),
	)

	return product, nil
}

// ListProducts returns products matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// UpdateProduct merges the provided fields onto the stored product. The ID
// is always the stored one; a different id in the input cannot change it.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.BrandID != nil {
		product.BrandID = *input.BrandID
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
	)

	return product, nil
}

// DeleteProduct removes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}
