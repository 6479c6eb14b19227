package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// OrderItem is a line of an order
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	SKU       string          `json:"sku,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order is a customer order within a store
type Order struct {
	ID              uuid.UUID       `json:"id"`
	StoreID         uuid.UUID       `json:"store_id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	OrderNumber     string          `json:"order_number"`
	Status          OrderStatus     `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingPrice   decimal.Decimal `json:"shipping_price"`
	TaxPrice        decimal.Decimal `json:"tax_price"`
	DiscountPrice   decimal.Decimal `json:"discount_price"`
	Currency        string          `json:"currency"`
	ShippingAddress map[string]any  `json:"shipping_address,omitempty"`
	BillingAddress  map[string]any  `json:"billing_address,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	ShippingMethod  string          `json:"shipping_method,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	TrackingURL     string          `json:"tracking_url,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []OrderItem     `json:"items"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderUpdate is the payload for a partial order update
type OrderUpdate struct {
	Status         *OrderStatus   `json:"status,omitempty"`
	TrackingNumber *string        `json:"tracking_number,omitempty"`
	TrackingURL    *string        `json:"tracking_url,omitempty"`
	ShippingMethod *string        `json:"shipping_method,omitempty"`
	Notes          *string        `json:"notes,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// ListOrdersOptions filters the order listing
type ListOrdersOptions struct {
	ListOptions
	StoreID *uuid.UUID
	Status  OrderStatus
}

// OrdersService covers the /orders endpoints
type OrdersService struct {
	client *Client
}

// List returns the current user's orders, newest first
func (s *OrdersService) List(ctx context.Context, opts ListOrdersOptions) ([]Order, error) {
	query := opts.values()
	if opts.StoreID != nil {
		query.Set("store_id", opts.StoreID.String())
	}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}

	var orders []Order
	if err := s.client.do(ctx, http.MethodGet, "/orders/", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns a single order by ID
func (s *OrdersService) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	if err := s.client.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update applies a partial update to an order
func (s *OrdersService) Update(ctx context.Context, id uuid.UUID, in OrderUpdate) (*Order, error) {
	var order Order
	if err := s.client.do(ctx, http.MethodPut, "/orders/"+id.String(), nil, in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order to a new lifecycle state
func (s *OrdersService) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (*Order, error) {
	return s.Update(ctx, id, OrderUpdate{Status: &status})
}
