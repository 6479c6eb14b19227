package commerceai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commerceai "github.com/commerceai/commerceai-go"
	"github.com/commerceai/commerceai-go/pkg/apiclient"
	"github.com/commerceai/commerceai-go/pkg/config"
	"github.com/commerceai/commerceai-go/pkg/session"
)

// fakeBackend is a minimal stand-in for the real API: one valid credential
// pair, a bearer token and the endpoints the wiring test exercises.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	const token = "backend-token"
	profile := map[string]any{
		"id":        uuid.New().String(),
		"email":     "owner@example.com",
		"full_name": "Shop Owner",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "owner@example.com" || body.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(profile)
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": uuid.New().String(), "store_id": uuid.New().String(), "name": "Widget", "price": "9.99"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestConsole_CredentialFlow(t *testing.T) {
	srv := fakeBackend(t)

	store := session.NewMemoryStore()
	console, err := commerceai.New(
		config.Config{APIBaseURL: srv.URL},
		commerceai.WithStore(store),
	)
	require.NoError(t, err)
	ctx := context.Background()

	// before login the client carries no credential
	_, err = console.Client.Products.List(ctx, apiclient.ListProductsOptions{})
	require.Error(t, err)

	require.NoError(t, console.Session.Login(ctx, "owner@example.com", "pw"))
	assert.True(t, console.Session.Status().IsAuthenticated())
	assert.Equal(t, "Shop Owner", console.Session.Profile().FullName)

	// the session's token now flows into API calls without extra wiring
	products, err := console.Client.Products.List(ctx, apiclient.ListProductsOptions{})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	// and the credential survived into the store for the next process
	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", saved)

	console.Session.Logout()
	_, err = console.Client.Products.List(ctx, apiclient.ListProductsOptions{})
	require.Error(t, err)
}

func TestConsole_BootstrapFromStoredCredential(t *testing.T) {
	srv := fakeBackend(t)
	ctx := context.Background()

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "backend-token"))

	console, err := commerceai.New(
		config.Config{APIBaseURL: srv.URL},
		commerceai.WithStore(store),
	)
	require.NoError(t, err)

	console.Session.Bootstrap(ctx)
	assert.True(t, console.Session.Status().IsAuthenticated())
	assert.Equal(t, "owner@example.com", console.Session.Profile().Email)
}

func TestConsole_BootstrapWithRejectedCredential(t *testing.T) {
	srv := fakeBackend(t)
	ctx := context.Background()

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "stale-token"))

	console, err := commerceai.New(
		config.Config{APIBaseURL: srv.URL},
		commerceai.WithStore(store),
	)
	require.NoError(t, err)

	// a rejected stored credential resolves quietly to unauthenticated
	console.Session.Bootstrap(ctx)
	assert.Equal(t, session.StatusUnauthenticated, console.Session.Status())
	assert.Nil(t, console.Session.Profile())

	// and the dead credential is purged from the store
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrTokenNotFound)
}
