package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"drherbs-api/internal/features/reviews/domain"
	"drherbs-api/internal/features/reviews/ports"
)

// ErrInvalidReview is returned when a submission fails validation.
var ErrInvalidReview = errors.New("invalid review")

// ErrMissingProductID is returned when a listing request names no product.
var ErrMissingProductID = errors.New("product_id is required")

// ReviewServiceImpl implements ports.ReviewService.
type ReviewServiceImpl struct {
	provider ports.Provider
}

// NewReviewService creates a new ReviewServiceImpl.
func NewReviewService(provider ports.Provider) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		provider: provider,
	}
}

// ListForProduct returns a product's reviews, newest first. A stable sort
// keeps the backend's relative order for same-day reviews.
func (s *ReviewServiceImpl) ListForProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}

	reviews, err := s.provider.ListReviews(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews: %w", err)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// Submit validates and stores a new review.
func (s *ReviewServiceImpl) Submit(ctx context.Context, productID, customerName string, rating int, comment string) (*domain.Review, error) {
	review, err := domain.NewReview(productID, customerName, rating, comment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReview, err)
	}

	created, err := s.provider.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create review: %w", err)
	}
	return created, nil
}
