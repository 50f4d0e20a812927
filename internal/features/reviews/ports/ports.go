package ports

import (
	"context"

	"drherbs-api/internal/features/reviews/domain"
)

// ReviewService defines review reads and submissions.
type ReviewService interface {
	// ListForProduct returns a product's reviews, newest first.
	ListForProduct(ctx context.Context, productID string) ([]domain.Review, error)
	// Submit validates and stores a new review.
	Submit(ctx context.Context, productID, customerName string, rating int, comment string) (*domain.Review, error)
}

// Provider is the storage backend for reviews.
type Provider interface {
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
}
