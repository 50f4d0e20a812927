package service

import (
	"context"
	"errors"
	"fmt"

	"drherbs-api/internal/features/marketing/domain"
	"drherbs-api/internal/features/marketing/ports"
)

// ErrMissingAdCode is returned when a pixel report names no ad code.
var ErrMissingAdCode = errors.New("ad_code is required")

// MarketingServiceImpl implements ports.MarketingService.
type MarketingServiceImpl struct {
	orders   ports.OrderSource
	products ports.ProductSource
}

// NewMarketingService creates a new MarketingServiceImpl.
func NewMarketingService(orders ports.OrderSource, products ports.ProductSource) *MarketingServiceImpl {
	return &MarketingServiceImpl{
		orders:   orders,
		products: products,
	}
}

// PixelReport aggregates the orders attributed to one ad code.
func (s *MarketingServiceImpl) PixelReport(ctx context.Context, adCode string) (*domain.PixelReport, error) {
	if adCode == "" {
		return nil, ErrMissingAdCode
	}

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	report := domain.BuildPixelReport(adCode, orders)
	return &report, nil
}

// Dashboard returns the admin dashboard summary.
func (s *MarketingServiceImpl) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	stats := domain.BuildDashboardStats(orders, len(products))
	return &stats, nil
}
