package domain

// PlaceholderBrandLogo is substituted when a brand is created without a logo.
const PlaceholderBrandLogo = "https://placehold.co/200x100?text=Brand+Logo"

// Brand represents a distributed brand.
type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo,omitempty"`
}
