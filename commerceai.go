// Package commerceai wires the pieces of the SDK together: configuration,
// the REST client and the session manager, with the credential flow bound
// between them. Most embedders only need:
//
//	cfg := config.MustLoad()
//	console, err := commerceai.New(cfg)
//	if err != nil { ... }
//
//	console.Session.Bootstrap(ctx)
//	if console.Session.Status().IsAuthenticated() {
//	    products, _ := console.Client.Products.List(ctx, apiclient.ListProductsOptions{})
//	    ...
//	}
package commerceai

import (
	"log/slog"

	"github.com/commerceai/commerceai-go/pkg/apiclient"
	"github.com/commerceai/commerceai-go/pkg/config"
	"github.com/commerceai/commerceai-go/pkg/session"
)

// Console is a fully wired SDK instance: one REST client and the session
// manager that feeds it credentials.
type Console struct {
	Client  *apiclient.Client
	Session *session.Manager
}

// Option is a functional option for configuring the Console
type Option func(*settings)

type settings struct {
	logger *slog.Logger
	store  session.Store
}

// WithLogger enables logging on both the client and the session manager
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithStore overrides the credential store (default: file store at
// cfg.TokenFile, or the user config dir when that is empty)
func WithStore(store session.Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// New builds a Console from the given configuration
func New(cfg config.Config, opts ...Option) (*Console, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.store == nil {
		store, err := session.NewFileStore(cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		s.store = store
	}

	clientOpts := []apiclient.Option{apiclient.WithTimeout(cfg.RequestTimeout)}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, apiclient.WithUserAgent(cfg.UserAgent))
	}
	if s.logger != nil {
		clientOpts = append(clientOpts, apiclient.WithLogger(s.logger))
	}

	client, err := apiclient.New(cfg.APIBaseURL, clientOpts...)
	if err != nil {
		return nil, err
	}

	sessionOpts := []session.Option{session.WithStore(s.store)}
	if s.logger != nil {
		sessionOpts = append(sessionOpts, session.WithLogger(s.logger))
	}

	mgr := session.New(client, sessionOpts...)
	client.SetCredentialFunc(mgr.Token)

	return &Console{Client: client, Session: mgr}, nil
}
