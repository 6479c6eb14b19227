package apiclient

import (
	"context"
	"net/http"

	"github.com/commerceai/commerceai-go/pkg/session"
)

// UserUpdate is the payload for the account-settings screen; nil fields are
// left untouched
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UsersService covers the /users endpoints beyond the Me call used by the
// session manager
type UsersService struct {
	client *Client
}

// UpdateMe updates the current user's account settings
func (s *UsersService) UpdateMe(ctx context.Context, in UserUpdate) (*session.Profile, error) {
	var profile session.Profile
	if err := s.client.do(ctx, http.MethodPut, "/users/me", nil, in, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all users; the backend restricts this to superusers
func (s *UsersService) List(ctx context.Context, opts ListOptions) ([]session.Profile, error) {
	var users []session.Profile
	if err := s.client.do(ctx, http.MethodGet, "/users/", opts.values(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
