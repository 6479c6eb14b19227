package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// Customer is a buyer belonging to a store
type Customer struct {
	ID               uuid.UUID        `json:"id"`
	StoreID          uuid.UUID        `json:"store_id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"first_name,omitempty"`
	LastName         string           `json:"last_name,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	IsActive         bool             `json:"is_active"`
	AcceptsMarketing bool             `json:"accepts_marketing"`
	DefaultAddress   map[string]any   `json:"default_address,omitempty"`
	Addresses        []map[string]any `json:"addresses,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Birthdate        string           `json:"birthdate,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// CustomerCreate is the payload for creating a customer
type CustomerCreate struct {
	StoreID          uuid.UUID        `json:"store_id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"first_name,omitempty"`
	LastName         string           `json:"last_name,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	AcceptsMarketing *bool            `json:"accepts_marketing,omitempty"`
	DefaultAddress   map[string]any   `json:"default_address,omitempty"`
	Addresses        []map[string]any `json:"addresses,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Birthdate        string           `json:"birthdate,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// CustomerUpdate is the payload for a partial customer update
type CustomerUpdate struct {
	Email            *string          `json:"email,omitempty"`
	FirstName        *string          `json:"first_name,omitempty"`
	LastName         *string          `json:"last_name,omitempty"`
	Phone            *string          `json:"phone,omitempty"`
	IsActive         *bool            `json:"is_active,omitempty"`
	AcceptsMarketing *bool            `json:"accepts_marketing,omitempty"`
	DefaultAddress   map[string]any   `json:"default_address,omitempty"`
	Addresses        []map[string]any `json:"addresses,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	Birthdate        *string          `json:"birthdate,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// ListCustomersOptions filters the customer listing
type ListCustomersOptions struct {
	ListOptions
	StoreID *uuid.UUID
}

// CustomersService covers the /customers endpoints
type CustomersService struct {
	client *Client
}

// List returns the current user's customers, optionally filtered by store
func (s *CustomersService) List(ctx context.Context, opts ListCustomersOptions) ([]Customer, error) {
	query := opts.values()
	if opts.StoreID != nil {
		query.Set("store_id", opts.StoreID.String())
	}

	var customers []Customer
	if err := s.client.do(ctx, http.MethodGet, "/customers/", query, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Get returns a single customer by ID
func (s *CustomersService) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var customer Customer
	if err := s.client.do(ctx, http.MethodGet, "/customers/"+id.String(), nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create adds a customer to a store owned by the current user
func (s *CustomersService) Create(ctx context.Context, in CustomerCreate) (*Customer, error) {
	if err := validator.Apply(validator.ValidEmail("email", in.Email)); err != nil {
		return nil, err
	}

	var customer Customer
	if err := s.client.do(ctx, http.MethodPost, "/customers/", nil, in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update applies a partial update to a customer
func (s *CustomersService) Update(ctx context.Context, id uuid.UUID, in CustomerUpdate) (*Customer, error) {
	var customer Customer
	if err := s.client.do(ctx, http.MethodPut, "/customers/"+id.String(), nil, in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer
func (s *CustomersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/customers/"+id.String(), nil, nil, nil)
}
