package domain

import (
	"fmt"
	"strings"
	"time"
)

// Review is a customer product review. Reviews are append-only; there is no
// edit or delete path.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_date"`
}

// NewReview validates and assembles a review submission.
func NewReview(productID, customerName string, rating int, comment string) (Review, error) {
	if strings.TrimSpace(productID) == "" {
		return Review{}, fmt.Errorf("product_id is required")
	}
	if strings.TrimSpace(customerName) == "" {
		return Review{}, fmt.Errorf("customer_name is required")
	}
	if rating < 1 || rating > 5 {
		return Review{}, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	return Review{
		ProductID:    strings.TrimSpace(productID),
		CustomerName: strings.TrimSpace(customerName),
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
	}, nil
}
