package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerceai/commerceai-go/pkg/apiclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty base URL", func(t *testing.T) {
		_, err := apiclient.New("")
		assert.ErrorIs(t, err, apiclient.ErrMissingBaseURL)
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		_, err := apiclient.New("/api/v1")
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
	})

	t.Run("trims trailing slash", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "T1", "token_type": "bearer"})
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL + "/")
		require.NoError(t, err)

		_, err = client.Login(context.Background(), "a@b.com", "pw")
		assert.NoError(t, err)
	})
}

func TestClient_CredentialAttachment(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "7f9c24e5-2c39-4b83-9d1f-6f2c1d9f0a11", "email": "a@b.com"})
	}))
	defer srv.Close()

	token := ""
	client, err := apiclient.New(srv.URL, apiclient.WithCredentialFunc(func() string { return token }))
	require.NoError(t, err)

	t.Run("no header while the credential source is empty", func(t *testing.T) {
		_, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("bearer header once a credential exists", func(t *testing.T) {
		token = "T1"
		_, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer T1", gotAuth)
	})

	t.Run("header disappears when the credential is dropped", func(t *testing.T) {
		token = ""
		_, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_ErrorDecoding(t *testing.T) {
	t.Parallel()

	newClient := func(t *testing.T, status int, body string) *apiclient.Client {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		t.Cleanup(srv.Close)

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)
		return client
	}

	t.Run("decodes the backend detail message", func(t *testing.T) {
		client := newClient(t, http.StatusUnauthorized, `{"detail":"Email o password non corretti"}`)

		_, err := client.Login(context.Background(), "a@b.com", "wrong")
		require.Error(t, err)

		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Email o password non corretti", apiErr.Detail)
		assert.True(t, apiclient.IsAuthError(err))
	})

	t.Run("preserves structured validation detail", func(t *testing.T) {
		client := newClient(t, http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","username"],"msg":"field required"}]}`)

		err := client.Register(context.Background(), "a@b.com", "pw", "Name")
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Detail, "field required")
		assert.False(t, apiclient.IsAuthError(err))
	})

	t.Run("falls back to the status text for opaque bodies", func(t *testing.T) {
		client := newClient(t, http.StatusBadGateway, "<html>upstream down</html>")

		_, err := client.Me(context.Background())
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Detail)
	})

	t.Run("discriminates not-found", func(t *testing.T) {
		client := newClient(t, http.StatusNotFound, `{"detail":"Prodotto non trovato"}`)

		_, err := client.Me(context.Background())
		assert.True(t, apiclient.IsNotFound(err))
		assert.False(t, apiclient.IsAuthError(err))
	})
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// The email identifier travels in the "username" field
		assert.Equal(t, "a@b.com", body.Username)
		assert.Equal(t, "pw", body.Password)

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "T1", "token_type": "bearer"})
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)

	token, err := client.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestClient_Register(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["username"])
		assert.Equal(t, "New User", body["full_name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "unused", "token_type": "bearer"})
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)

	assert.NoError(t, client.Register(context.Background(), "a@b.com", "pw", "New User"))
}
