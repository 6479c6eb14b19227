package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// DashboardMetrics is the aggregate snapshot behind the console's landing
// screen
type DashboardMetrics struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	RevenueChange  decimal.Decimal `json:"revenue_change"`
	TotalOrders    int             `json:"total_orders"`
	OrdersChange   decimal.Decimal `json:"orders_change"`
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	Currency       string          `json:"currency"`
}

// DashboardService covers the /dashboard endpoints
type DashboardService struct {
	client *Client
}

// Metrics returns the aggregate metrics for the current user's stores
func (s *DashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	var metrics DashboardMetrics
	if err := s.client.do(ctx, http.MethodGet, "/dashboard/metrics", nil, nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// RecentOrders returns the latest orders across the user's stores for the
// dashboard's activity table
func (s *DashboardService) RecentOrders(ctx context.Context, limit int) ([]Order, error) {
	opts := ListOptions{Limit: limit}
	var orders []Order
	if err := s.client.do(ctx, http.MethodGet, "/dashboard/recent-orders", opts.values(), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
