package session

import "context"

// Store persists the single bearer-token slot across client restarts.
// Absence of the token means the client is anonymous; implementations return
// ErrTokenNotFound for the empty slot rather than an empty string.
type Store interface {
	// Load returns the stored token, or ErrTokenNotFound if the slot is empty
	Load(ctx context.Context) (string, error)

	// Save replaces the slot with the given token
	Save(ctx context.Context, token string) error

	// Delete empties the slot; deleting an already-empty slot is not an error
	Delete(ctx context.Context) error
}
