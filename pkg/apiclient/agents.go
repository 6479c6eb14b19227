package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// AgentType identifies what an AI agent automates
type AgentType string

const (
	AgentTypeInventory       AgentType = "inventory"
	AgentTypePricing         AgentType = "pricing"
	AgentTypeCustomerService AgentType = "customer_service"
	AgentTypeMarketing       AgentType = "marketing"
)

// AgentStatus is the operational state of an agent
type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
	AgentStatusRunning  AgentStatus = "running"
	AgentStatusError    AgentStatus = "error"
)

// AgentSettings controls how an agent runs
type AgentSettings struct {
	RunFrequencyHours        int     `json:"run_frequency"`
	AutoRun                  bool    `json:"auto_run"`
	ConfidenceThreshold      float64 `json:"confidence_threshold"`
	MaxActionsPerRun         int     `json:"max_actions_per_run"`
	NotificationOnCompletion bool    `json:"notification_on_completion"`
}

// Agent is a configured AI automation for the account
type Agent struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Type        AgentType     `json:"type"`
	Status      AgentStatus   `json:"status"`
	Description string        `json:"description,omitempty"`
	Settings    AgentSettings `json:"settings"`
	CreatedAt   time.Time     `json:"created_at"`
	LastRun     *time.Time    `json:"last_run,omitempty"`
}

// AgentCreate is the payload for configuring a new agent
type AgentCreate struct {
	Name        string        `json:"name"`
	Type        AgentType     `json:"type"`
	Description string        `json:"description,omitempty"`
	Settings    AgentSettings `json:"settings"`
}

// AgentUpdate is the payload for a partial agent update
type AgentUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Settings    *AgentSettings `json:"settings,omitempty"`
}

// AgentRun is one execution of an agent
type AgentRun struct {
	ID           uuid.UUID  `json:"id"`
	AgentID      uuid.UUID  `json:"agent_id"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ActionsTaken int        `json:"actions_taken"`
	Results      string     `json:"results,omitempty"`
}

// AgentsService covers the /agents endpoints
type AgentsService struct {
	client *Client
}

// List returns the account's configured agents
func (s *AgentsService) List(ctx context.Context, opts ListOptions) ([]Agent, error) {
	var agents []Agent
	if err := s.client.do(ctx, http.MethodGet, "/agents", opts.values(), nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// Get returns a single agent by ID
func (s *AgentsService) Get(ctx context.Context, id uuid.UUID) (*Agent, error) {
	var agent Agent
	if err := s.client.do(ctx, http.MethodGet, "/agents/"+id.String(), nil, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Create configures a new agent
func (s *AgentsService) Create(ctx context.Context, in AgentCreate) (*Agent, error) {
	if err := validator.ApplyAll(
		validator.Required("name", in.Name),
		validator.Required("type", string(in.Type)),
	); err != nil {
		return nil, err
	}

	var agent Agent
	if err := s.client.do(ctx, http.MethodPost, "/agents", nil, in, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Update applies a partial update to an agent's configuration
func (s *AgentsService) Update(ctx context.Context, id uuid.UUID, in AgentUpdate) (*Agent, error) {
	var agent Agent
	if err := s.client.do(ctx, http.MethodPut, "/agents/"+id.String(), nil, in, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Delete removes an agent configuration
func (s *AgentsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, "/agents/"+id.String(), nil, nil, nil)
}

// Start triggers an immediate run of the agent
func (s *AgentsService) Start(ctx context.Context, id uuid.UUID) (*Agent, error) {
	var agent Agent
	if err := s.client.do(ctx, http.MethodPost, "/agents/"+id.String()+"/start", nil, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Stop halts a running agent
func (s *AgentsService) Stop(ctx context.Context, id uuid.UUID) (*Agent, error) {
	var agent Agent
	if err := s.client.do(ctx, http.MethodPost, "/agents/"+id.String()+"/stop", nil, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Runs returns the execution history of an agent, newest first
func (s *AgentsService) Runs(ctx context.Context, id uuid.UUID, opts ListOptions) ([]AgentRun, error) {
	var runs []AgentRun
	if err := s.client.do(ctx, http.MethodGet, "/agents/"+id.String()+"/runs", opts.values(), nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
