package domain

import (
	"sort"
	"strings"

	"drherbs-api/internal/core/money"
)

// SortKey selects the ordering of a catalog listing.
type SortKey string

const (
	// SortNewest orders by creation date, newest first. This is the default.
	SortNewest SortKey = "newest"
	// SortPriceLow orders by price, cheapest first.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price, most expensive first.
	SortPriceHigh SortKey = "price-high"
	// SortRating orders by average rating, best first.
	SortRating SortKey = "rating"
)

// Criteria is the combined filter and sort specification for a catalog listing.
// The zero value imposes no constraints and sorts by newest.
type Criteria struct {
	// Search keeps only products whose name contains the term, case-insensitively.
	Search string
	// Category keeps only products with this exact category. Empty means all.
	Category string
	// MinPrice is the inclusive lower price bound.
	MinPrice money.Cents
	// MaxPrice is the inclusive upper price bound. Zero or negative means unbounded.
	MaxPrice money.Cents
	// MinRating keeps only products rated at or above this value. Zero means all.
	MinRating float64
	// Sort selects the ordering. Unrecognized values fall back to SortNewest.
	Sort SortKey
}

// Query returns the filtered, ordered view of products for the given criteria.
// All filters are AND-combined. The input slice is never modified; ties under
// any sort key preserve their original relative order.
func Query(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}

	sortProducts(out, c.Sort)
	return out
}

// matches reports whether a product passes every active filter.
func matches(p Product, c Criteria) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}
	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}
	return true
}

// sortProducts orders the slice in place. Zero creation timestamps sort as the
// oldest possible value under SortNewest.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
