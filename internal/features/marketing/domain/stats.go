package domain

import (
	"drherbs-api/internal/core/money"
	ordersdomain "drherbs-api/internal/features/orders/domain"
)

// PixelReport aggregates the orders attributed to one ad code, used to feed
// conversion numbers back into the Facebook pixel.
type PixelReport struct {
	AdCode       string               `json:"ad_code"`
	TotalOrders  int                  `json:"total_orders"`
	TotalRevenue money.Cents          `json:"total_revenue"`
	Orders       []ordersdomain.Order `json:"orders"`
}

// DaySales is one weekday's aggregate in a WeekdaySales report.
type DaySales struct {
	Day     string      `json:"day"`
	Orders  int         `json:"orders"`
	Revenue money.Cents `json:"revenue"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalOrders   int         `json:"total_orders"`
	PendingOrders int         `json:"pending_orders"`
	TotalRevenue  money.Cents `json:"total_revenue"`
	TotalProducts int         `json:"total_products"`
	WeekdaySales  []DaySales  `json:"weekday_sales"`
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BuildPixelReport collects the orders carrying the given ad code.
func BuildPixelReport(adCode string, orders []ordersdomain.Order) PixelReport {
	report := PixelReport{
		AdCode: adCode,
		Orders: []ordersdomain.Order{},
	}
	for _, o := range orders {
		if o.AdCode != adCode {
			continue
		}
		report.Orders = append(report.Orders, o)
		report.TotalOrders++
		report.TotalRevenue += o.Total
	}
	return report
}

// BuildWeekdaySales buckets order revenue by weekday, Monday first. Orders
// without a creation date are skipped rather than miscounted as Monday.
func BuildWeekdaySales(orders []ordersdomain.Order) []DaySales {
	days := make([]DaySales, 7)
	for i, label := range weekdayLabels {
		days[i].Day = label
	}

	for _, o := range orders {
		if o.CreatedAt.IsZero() || o.Status == ordersdomain.StatusCancelled {
			continue
		}
		idx := (int(o.CreatedAt.Weekday()) + 6) % 7
		days[idx].Orders++
		days[idx].Revenue += o.Total
	}
	return days
}

// BuildDashboardStats summarizes orders for the admin dashboard. Cancelled
// orders count toward the order total but not toward revenue.
func BuildDashboardStats(orders []ordersdomain.Order, productCount int) DashboardStats {
	stats := DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: productCount,
		WeekdaySales:  BuildWeekdaySales(orders),
	}
	for _, o := range orders {
		if o.Status == ordersdomain.StatusPending {
			stats.PendingOrders++
		}
		if o.Status != ordersdomain.StatusCancelled {
			stats.TotalRevenue += o.Total
		}
	}
	return stats
}
