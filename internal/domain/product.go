package domain

// CategoryAll is the sentinel category value meaning "no category filter".
// The storefront renders it as the first tab of the category bar.
const CategoryAll = "Tümü"

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "Genel"

// PlaceholderProductImage is substituted when a product is created without an image.
const PlaceholderProductImage = "https://placehold.co/600x400?text=No+Image"

// Product represents a catalog product.
//
// BrandID references Brand.ID but is not enforced: deleting a brand leaves
// dangling BrandID values on its products. The admin screens tolerate this,
// so the data layer must not "fix" it.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrandID     string `json:"brandId"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}
