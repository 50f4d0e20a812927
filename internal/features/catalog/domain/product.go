package domain

import (
	"time"

	"drherbs-api/internal/core/money"
)

// Product represents a single item in the herbal products catalog.
// The upstream backend owns the record; the storefront treats it as read-only
// outside of the admin endpoints.
type Product struct {
	// ID is the unique identifier for the product.
	ID string `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Description is the long, rich-text product description.
	Description string `json:"description,omitempty"`
	// ShortDescription is the one-line teaser shown on listing cards.
	ShortDescription string `json:"short_description,omitempty"`
	// Price is the current selling price.
	Price money.Cents `json:"price"`
	// OriginalPrice is the pre-discount price. Zero means no discount.
	OriginalPrice money.Cents `json:"original_price,omitempty"`
	// Category is the catalog category slug (e.g., herbs, teas, oils).
	Category string `json:"category"`
	// ImageURL is the primary product image.
	ImageURL string `json:"image_url,omitempty"`
	// Images holds additional gallery image URLs in display order.
	Images []string `json:"images,omitempty"`
	// Stock is the number of units available.
	Stock int `json:"stock"`
	// Featured marks the product for the home page showcase.
	Featured bool `json:"featured"`
	// Rating is the average review rating, 0 to 5.
	Rating float64 `json:"rating"`
	// ReviewCount is the number of reviews behind Rating.
	ReviewCount int `json:"review_count"`
	// Benefits lists the marketed benefits in display order.
	Benefits []string `json:"benefits,omitempty"`
	// Ingredients is the free-text ingredients list.
	Ingredients string `json:"ingredients,omitempty"`
	// CreatedAt is the timestamp when the product was created.
	CreatedAt time.Time `json:"created_date"`
}

// Discounted reports whether the product carries a visible discount,
// i.e. an original price above the current price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price && p.OriginalPrice > 0
}
