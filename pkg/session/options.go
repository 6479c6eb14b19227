package session

import "log/slog"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the credential store (default: in-memory)
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLogger sets the logger (default: discard)
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
