package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "commerceai-go/1.0"

	// maxResponseSize caps how much of a backend response is read (10MB)
	maxResponseSize = 10 * 1024 * 1024
)

// CredentialFunc supplies the bearer token attached to outgoing requests.
// An empty return means the request goes out unauthenticated.
type CredentialFunc func() string

// Client talks to the CommerceAI backend. Resource endpoints hang off the
// exported service fields; the auth endpoints live on the client itself so
// it satisfies session.API directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string

	credMu         sync.RWMutex
	credentialFunc CredentialFunc

	Products     *ProductsService
	Orders       *OrdersService
	Customers    *CustomersService
	Stores       *StoresService
	Integrations *IntegrationsService
	Agents       *AgentsService
	Email        *EmailService
	Users        *UsersService
	Dashboard    *DashboardService
}

// New creates a client for the backend rooted at baseURL
// (e.g. "https://api.example.com/api/v1").
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductsService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Customers = &CustomersService{client: c}
	c.Stores = &StoresService{client: c}
	c.Integrations = &IntegrationsService{client: c}
	c.Agents = &AgentsService{client: c}
	c.Email = &EmailService{client: c}
	c.Users = &UsersService{client: c}
	c.Dashboard = &DashboardService{client: c}

	return c, nil
}

// SetCredentialFunc binds the credential source consulted on every request.
// Typically wired to session.Manager.Token after both are constructed.
func (c *Client) SetCredentialFunc(fn CredentialFunc) {
	c.credMu.Lock()
	c.credentialFunc = fn
	c.credMu.Unlock()
}

func (c *Client) credential() string {
	c.credMu.RLock()
	fn := c.credentialFunc
	c.credMu.RUnlock()

	if fn == nil {
		return ""
	}
	return fn()
}

// do issues a JSON request and decodes the response into out (skipped when
// out is nil). Responses with status >= 400 are decoded into *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.credential(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("backend request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Debug("backend error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// ListOptions is the offset pagination used by every list endpoint
type ListOptions struct {
	Skip  int
	Limit int
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Skip > 0 {
		v.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	return v
}
