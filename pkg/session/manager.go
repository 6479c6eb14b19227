package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

// API is the backend surface the manager depends on. *apiclient.Client
// satisfies it.
type API interface {
	// Login exchanges credentials for a bearer token
	Login(ctx context.Context, email, password string) (accessToken string, err error)

	// Register creates an account; it does not issue a session
	Register(ctx context.Context, email, password, fullName string) error

	// Me fetches the profile of the user the attached credential belongs to
	Me(ctx context.Context) (*Profile, error)
}

// Manager owns the session state. One instance exists per running client;
// the persisted credential slot and the credential handed to the HTTP client
// are only ever written from inside its operations.
type Manager struct {
	api    API
	store  Store
	logger *slog.Logger

	mu         sync.Mutex
	status     Status
	profile    *Profile
	credential string
	loading    bool
	gen        uint64

	bootstrapOnce sync.Once

	subMu       sync.Mutex
	subscribers []func(Snapshot)
}

// New creates a session manager backed by the given API. Without WithStore
// the credential slot is in-memory and the session will not survive a
// restart. Loading reports true until Bootstrap has resolved, so route
// guards can hold rendering from the first instant.
func New(api API, opts ...Option) *Manager {
	if api == nil {
		// Fail fast on misconfiguration; a manager without a backend is unusable
		panic("session: api is required")
	}

	m := &Manager{
		api:     api,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		status:  StatusAnonymous,
		loading: true,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	return m
}

// Bootstrap restores a previous session from the stored credential. It runs
// at most once per manager lifetime; repeated calls are no-ops. Failures are
// absorbed rather than returned: an expired session on startup is routine,
// the client simply resolves to logged-out.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() { m.bootstrap(ctx) })
}

func (m *Manager) bootstrap(ctx context.Context) {
	// The generation is claimed before the credential load so a logout or
	// login racing the bootstrap invalidates it from the first step.
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	token, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrTokenNotFound) {
			m.logger.Warn("bootstrap: credential load failed", slog.Any("error", err))
		}

		// Empty slot: resolve immediately, no network call is made
		m.mu.Lock()
		if gen != m.gen {
			m.mu.Unlock()
			return
		}
		m.status = StatusAnonymous
		m.loading = false
		snap := m.snapshotLocked()
		m.mu.Unlock()
		m.notify(snap)
		return
	}

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.credential = token // attached before the profile fetch goes out
	m.status = StatusBootstrapping
	m.loading = true
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)

	profile, err := m.api.Me(ctx)

	m.mu.Lock()
	if gen != m.gen {
		// A login or logout raced the fetch; their state wins
		m.mu.Unlock()
		return
	}

	if err != nil {
		// Stored credential is no longer usable: wipe it everywhere and
		// resolve logged-out. The error is swallowed by contract.
		m.credential = ""
		m.profile = nil
		m.status = StatusUnauthenticated
		m.loading = false
		if derr := m.store.Delete(ctx); derr != nil {
			m.logger.Warn("bootstrap: credential delete failed", slog.Any("error", derr))
		}
		snap = m.snapshotLocked()
		m.mu.Unlock()

		m.logger.Debug("bootstrap: stored credential rejected", slog.Any("error", err))
		m.notify(snap)
		return
	}

	m.profile = profile
	m.status = StatusAuthenticated
	m.loading = false
	snap = m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

// Login exchanges the credentials for a bearer token, persists it, fetches
// the profile with it and only then flips the state to authenticated. On any
// failure no partial state survives: a token is never kept without a profile.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := validator.ApplyAll(
		validator.ValidEmail("email", email),
		validator.Required("password", password),
	); err != nil {
		return err
	}

	// The generation is claimed before the token exchange so a logout issued
	// while the exchange is in flight makes this attempt stale.
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return loginError(err)
	}

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return ErrSuperseded
	}
	m.credential = token // attached before the profile fetch goes out
	if err := m.store.Save(ctx, token); err != nil {
		m.credential = ""
		m.mu.Unlock()
		return fmt.Errorf("session: persist credential: %w", err)
	}
	m.mu.Unlock()

	profile, err := m.api.Me(ctx)

	m.mu.Lock()
	if gen != m.gen {
		// A newer login or logout took over; this result must not apply
		m.mu.Unlock()
		return ErrSuperseded
	}

	if err != nil {
		// A session is never reported authenticated without a profile. Any
		// previous session's credential was already overwritten by the new
		// token, so the only consistent outcome is fully logged out.
		m.credential = ""
		m.profile = nil
		m.status = StatusAnonymous
		m.loading = false
		if derr := m.store.Delete(ctx); derr != nil {
			m.logger.Warn("login: credential delete failed", slog.Any("error", derr))
		}
		snap := m.snapshotLocked()
		m.mu.Unlock()
		m.notify(snap)
		return loginError(err)
	}

	m.profile = profile
	m.status = StatusAuthenticated
	m.loading = false
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Debug("login succeeded", slog.String("email", profile.Email))
	m.notify(snap)
	return nil
}

// Register creates the account and, on success, chains straight into Login
// with the same credentials; the backend does not issue a session on
// registration. A registration failure short-circuits and never attempts the
// login.
func (m *Manager) Register(ctx context.Context, email, password, fullName string) error {
	if err := validator.ApplyAll(
		validator.ValidEmail("email", email),
		validator.StrongPassword("password", password),
		validator.Required("full_name", fullName),
	); err != nil {
		return err
	}

	if err := m.api.Register(ctx, email, password, fullName); err != nil {
		return errors.Join(ErrRegistrationFailed, err)
	}

	return m.Login(ctx, email, password)
}

// Logout ends the session: the stored credential, the attached credential
// and the profile are cleared together. It never fails, is idempotent, and
// is sticky — any in-flight login or bootstrap that resolves afterwards is
// discarded.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.gen++
	m.credential = ""
	m.profile = nil
	m.status = StatusAnonymous
	m.loading = false
	if err := m.store.Delete(context.Background()); err != nil {
		m.logger.Warn("logout: credential delete failed", slog.Any("error", err))
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

// Token returns the current bearer credential, or the empty string when the
// session holds none. The HTTP client consults this per request, so the
// credential stops flowing the instant the state transition that invalidated
// it completes.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential
}

// Status returns the current authentication status
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Loading reports whether the initial bootstrap is still unresolved
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Profile returns a copy of the current user profile, or nil when not
// authenticated
func (m *Manager) Profile() *Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil
	}
	cp := *m.profile
	return &cp
}

// Snapshot returns a consistent view of status, profile and loading flag
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Claims introspects the current credential without verifying it. Returns
// ErrTokenNotFound when no credential is held.
func (m *Manager) Claims() (*Claims, error) {
	token := m.Token()
	if token == "" {
		return nil, ErrTokenNotFound
	}
	return ParseClaims(token)
}

// OnChange registers a subscriber invoked with a state snapshot after every
// transition. Callbacks run outside the state lock and must not assume any
// ordering between concurrent transitions beyond snapshot consistency.
func (m *Manager) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	m.subMu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.subMu.Unlock()
}

func (m *Manager) snapshotLocked() Snapshot {
	var p *Profile
	if m.profile != nil {
		cp := *m.profile
		p = &cp
	}
	return Snapshot{Status: m.status, Profile: p, Loading: m.loading}
}

func (m *Manager) notify(snap Snapshot) {
	m.subMu.Lock()
	subs := slices.Clone(m.subscribers)
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// authStatusError matches transport errors that can tell an authorization
// rejection from other failures (satisfied by apiclient.APIError)
type authStatusError interface {
	IsAuth() bool
}

func loginError(err error) error {
	var ae authStatusError
	if errors.As(err, &ae) && ae.IsAuth() {
		return errors.Join(ErrInvalidCredentials, err)
	}
	return fmt.Errorf("session: login: %w", err)
}
