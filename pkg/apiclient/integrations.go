package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// Integration is a third-party service connection (payments, shipping,
// marketing, ...) owned by the account
type Integration struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Provider    string         `json:"provider"`
	IsActive    bool           `json:"is_active"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// IntegrationCreate is the payload for connecting an integration
type IntegrationCreate struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Provider    string         `json:"provider"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// IntegrationUpdate is the payload for a partial integration update
type IntegrationUpdate struct {
	Name        *string        `json:"name,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// IntegrationsService covers the /integrations endpoints
type IntegrationsService struct {
	client *Client
}

// List returns the current user's integrations
func (s *IntegrationsService) List(ctx context.Context, opts ListOptions) ([]Integration, error) {
	var integrations []Integration
	if err := s.client.do(ctx, http.MethodGet, "/integrations/", opts.values(), nil, &integrations); err != nil {
		return nil, err
	}
	return integrations, nil
}

// Get returns a single integration by ID
func (s *IntegrationsService) Get(ctx context.Context, id uuid.UUID) (*Integration, error) {
	var integration Integration
	if err := s.client.do(ctx, http.MethodGet, "/integrations/"+id.String(), nil, nil, &integration); err != nil {
		return nil, err
	}
	return &integration, nil
}

// Create connects a new third-party integration
func (s *IntegrationsService) Create(ctx context.Context, in IntegrationCreate) (*Integration, error) {
	if err := validator.ApplyAll(
		validator.Required("name", in.Name),
		validator.Required("type", in.Type),
		validator.Required("provider", in.Provider),
	); err != nil {
		return nil, err
	}

	var integration Integration
	if err := s.client.do(ctx, http.MethodPost, "/integrations/", nil, in, &integration); err != nil {
		return nil, err
	}
	return &integration, nil
}

// Update applies a partial update to an integration
func (s *IntegrationsService) Update(ctx context.Context, id uuid.UUID, in IntegrationUpdate) (*Integration, error) {
	var integration Integration
	if err := s.client.do(ctx, http.MethodPut, "/integrations/"+id.String(), nil, in, &integration); err != nil {
		return nil, err
	}
	return &integration, nil
}

// Delete disconnects an integration
func (s *IntegrationsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/integrations/"+id.String(), nil, nil, nil)
}
