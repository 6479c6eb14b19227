package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// EmailTemplate is a reusable message template for customer campaigns
type EmailTemplate struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	IsActive bool      `json:"is_active"`
}

// EmailTemplateCreate is the payload for creating a template
type EmailTemplateCreate struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailTemplateUpdate is the payload for a partial template update
type EmailTemplateUpdate struct {
	Name     *string `json:"name,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Body     *string `json:"body,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// EmailSend addresses a template to customers of a store, either by customer
// ID or by raw address
type EmailSend struct {
	TemplateID     uuid.UUID      `json:"template_id"`
	StoreID        uuid.UUID      `json:"store_id"`
	CustomerIDs    []uuid.UUID    `json:"customer_ids,omitempty"`
	EmailAddresses []string       `json:"email_addresses,omitempty"`
	Context        map[string]any `json:"context,omitempty"`
}

// EmailService covers the /email endpoints
type EmailService struct {
	client *Client
}

// ListTemplates returns the account's email templates
func (s *EmailService) ListTemplates(ctx context.Context, opts ListOptions) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	if err := s.client.do(ctx, http.MethodGet, "/email/templates", opts.values(), nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate returns a single template by ID
func (s *EmailService) GetTemplate(ctx context.Context, id uuid.UUID) (*EmailTemplate, error) {
	var template EmailTemplate
	if err := s.client.do(ctx, http.MethodGet, "/email/templates/"+id.String(), nil, nil, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// CreateTemplate adds a new email template
func (s *EmailService) CreateTemplate(ctx context.Context, in EmailTemplateCreate) (*EmailTemplate, error) {
	if err := validator.ApplyAll(
		validator.Required("name", in.Name),
		validator.Required("subject", in.Subject),
		validator.Required("body", in.Body),
	); err != nil {
		return nil, err
	}

	var template EmailTemplate
	if err := s.client.do(ctx, http.MethodPost, "/email/templates", nil, in, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// UpdateTemplate applies a partial update to a template
func (s *EmailService) UpdateTemplate(ctx context.Context, id uuid.UUID, in EmailTemplateUpdate) (*EmailTemplate, error) {
	var template EmailTemplate
	if err := s.client.do(ctx, http.MethodPut, "/email/templates/"+id.String(), nil, in, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// DeleteTemplate removes a template
func (s *EmailService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/email/templates/"+id.String(), nil, nil, nil)
}

// Send queues a template for delivery to the given recipients
func (s *EmailService) Send(ctx context.Context, in EmailSend) error {
	rules := make([]validator.Rule, 0, len(in.EmailAddresses))
	for _, addr := range in.EmailAddresses {
		rules = append(rules, validator.ValidEmail("email_addresses", addr))
	}
	if err := validator.ApplyAll(rules...); err != nil {
		return err
	}

	return s.client.do(ctx, http.MethodPost, "/email/send", nil, in, nil)
}
