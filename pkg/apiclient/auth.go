package apiclient

import (
	"context"
	"net/http"

	"github.com/commerceai/commerceai-go/pkg/session"
)

// tokenResponse is the login endpoint payload
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// loginRequest uses "username" for the email identifier, the backend's
// OAuth2 password-grant field-name convention
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var token tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Username: email,
		Password: password,
	}, &token)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// Register creates a new account. The backend does not issue a usable
// session on registration; callers log in afterwards.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{
		Username: email,
		Password: password,
		FullName: fullName,
	}, nil)
}

// Me fetches the profile of the user the attached credential belongs to
func (c *Client) Me(ctx context.Context) (*session.Profile, error) {
	var profile session.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
