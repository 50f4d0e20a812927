package ports

import (
	"context"

	catalogdomain "drherbs-api/internal/features/catalog/domain"
	"drherbs-api/internal/features/marketing/domain"
	ordersdomain "drherbs-api/internal/features/orders/domain"
)

// MarketingService defines the admin analytics operations.
type MarketingService interface {
	// PixelReport aggregates the orders attributed to one ad code.
	PixelReport(ctx context.Context, adCode string) (*domain.PixelReport, error)
	// Dashboard returns the admin dashboard summary.
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// OrderSource supplies the order history to aggregate over. The orders
// feature's backend adapter satisfies it structurally.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]ordersdomain.Order, error)
}

// ProductSource supplies the catalog for product counts. The catalog
// feature's backend adapter satisfies it structurally.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]catalogdomain.Product, error)
}
