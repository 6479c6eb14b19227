package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// Product is a catalog item belonging to a store
type Product struct {
	ID             uuid.UUID        `json:"id"`
	StoreID        uuid.UUID        `json:"store_id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	SKU            string           `json:"sku,omitempty"`
	Barcode        string           `json:"barcode,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	CostPrice      *decimal.Decimal `json:"cost_price,omitempty"`
	Quantity       int              `json:"quantity"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	WeightUnit     string           `json:"weight_unit,omitempty"`
	IsActive       bool             `json:"is_active"`
	IsDigital      bool             `json:"is_digital"`
	Categories     []string         `json:"categories,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Images         []string         `json:"images,omitempty"`
	Variants       map[string]any   `json:"variants,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
}

// ProductCreate is the payload for creating a product
type ProductCreate struct {
	StoreID        uuid.UUID        `json:"store_id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	SKU            string           `json:"sku,omitempty"`
	Barcode        string           `json:"barcode,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	CostPrice      *decimal.Decimal `json:"cost_price,omitempty"`
	Quantity       int              `json:"quantity"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	WeightUnit     string           `json:"weight_unit,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
	IsDigital      *bool            `json:"is_digital,omitempty"`
	Categories     []string         `json:"categories,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Images         []string         `json:"images,omitempty"`
	Variants       map[string]any   `json:"variants,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
}

// ProductUpdate is the payload for a partial product update; nil fields are
// left untouched by the backend
type ProductUpdate struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	SKU            *string          `json:"sku,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	CostPrice      *decimal.Decimal `json:"cost_price,omitempty"`
	Quantity       *int             `json:"quantity,omitempty"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	WeightUnit     *string          `json:"weight_unit,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
	IsDigital      *bool            `json:"is_digital,omitempty"`
	Categories     []string         `json:"categories,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Images         []string         `json:"images,omitempty"`
	Variants       map[string]any   `json:"variants,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
}

// ListProductsOptions filters the product listing
type ListProductsOptions struct {
	ListOptions
	StoreID *uuid.UUID
}

// ProductsService covers the /products endpoints
type ProductsService struct {
	client *Client
}

// List returns the current user's products, optionally filtered by store
func (s *ProductsService) List(ctx context.Context, opts ListProductsOptions) ([]Product, error) {
	query := opts.values()
	if opts.StoreID != nil {
		query.Set("store_id", opts.StoreID.String())
	}

	var products []Product
	if err := s.client.do(ctx, http.MethodGet, "/products/", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns a single product by ID
func (s *ProductsService) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	if err := s.client.do(ctx, http.MethodGet, "/products/"+id.String(), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create adds a product to a store owned by the current user
func (s *ProductsService) Create(ctx context.Context, in ProductCreate) (*Product, error) {
	if err := validator.ApplyAll(
		validator.Required("name", in.Name),
		validator.MaxLen("name", in.Name, 255),
	); err != nil {
		return nil, err
	}

	var product Product
	if err := s.client.do(ctx, http.MethodPost, "/products/", nil, in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies a partial update to a product
func (s *ProductsService) Update(ctx context.Context, id uuid.UUID, in ProductUpdate) (*Product, error) {
	var product Product
	if err := s.client.do(ctx, http.MethodPut, "/products/"+id.String(), nil, in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product
func (s *ProductsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/products/"+id.String(), nil, nil, nil)
}
