package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store with a single file holding the raw token, so a
// session survives process restarts. Writes go through a temp file and rename
// so a crash can never leave a torn token.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed token store at the given path. An empty
// path places the token under the user config directory
// (e.g. ~/.config/commerceai/token).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "commerceai", "token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session: create token dir: %w", err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the location of the token file
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the stored token
func (f *FileStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("session: read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// Save replaces the slot with the given token
func (f *FileStore) Save(ctx context.Context, token string) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: write token file: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("session: replace token file: %w", err)
	}
	return nil
}

// Delete empties the slot
func (f *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove token file: %w", err)
	}
	return nil
}
