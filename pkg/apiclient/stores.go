package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// StorePlatform is the e-commerce platform a store runs on
type StorePlatform string

const (
	StorePlatformShopify     StorePlatform = "shopify"
	StorePlatformWooCommerce StorePlatform = "woocommerce"
	StorePlatformCustom      StorePlatform = "custom"
)

// Store is an e-commerce storefront connected to the account
type Store struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Platform    StorePlatform  `json:"platform"`
	IsActive    bool           `json:"is_active"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// StoreCreate is the payload for connecting a store
type StoreCreate struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Platform    StorePlatform  `json:"platform"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// StoreUpdate is the payload for a partial store update
type StoreUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	URL         *string        `json:"url,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// StoresService covers the /stores endpoints
type StoresService struct {
	client *Client
}

// List returns the current user's stores
func (s *StoresService) List(ctx context.Context, opts ListOptions) ([]Store, error) {
	var stores []Store
	if err := s.client.do(ctx, http.MethodGet, "/stores/", opts.values(), nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// Get returns a single store by ID
func (s *StoresService) Get(ctx context.Context, id uuid.UUID) (*Store, error) {
	var store Store
	if err := s.client.do(ctx, http.MethodGet, "/stores/"+id.String(), nil, nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// Create connects a new store to the account
func (s *StoresService) Create(ctx context.Context, in StoreCreate) (*Store, error) {
	rules := []validator.Rule{
		validator.Required("name", in.Name),
		validator.OneOf("platform", string(in.Platform),
			string(StorePlatformShopify), string(StorePlatformWooCommerce), string(StorePlatformCustom)),
	}
	if in.URL != "" {
		rules = append(rules, validator.ValidURL("url", in.URL))
	}
	if err := validator.ApplyAll(rules...); err != nil {
		return nil, err
	}

	var store Store
	if err := s.client.do(ctx, http.MethodPost, "/stores/", nil, in, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// Update applies a partial update to a store
func (s *StoresService) Update(ctx context.Context, id uuid.UUID, in StoreUpdate) (*Store, error) {
	var store Store
	if err := s.client.do(ctx, http.MethodPut, "/stores/"+id.String(), nil, in, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// Delete disconnects a store
func (s *StoresService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/stores/"+id.String(), nil, nil, nil)
}
