package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerceai/commerceai-go/pkg/session"
)

func mintToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: subject}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	t.Parallel()

	t.Run("extracts subject and expiry", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		token := mintToken(t, "user-123", expiry)

		claims, err := session.ParseClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.True(t, claims.ExpiresAt.Equal(expiry))
		assert.False(t, claims.Expired())
	})

	t.Run("reports a past expiry as expired", func(t *testing.T) {
		token := mintToken(t, "user-123", time.Now().Add(-time.Hour))

		claims, err := session.ParseClaims(token)
		require.NoError(t, err)
		assert.True(t, claims.Expired())
	})

	t.Run("token without exp is never expired client-side", func(t *testing.T) {
		token := mintToken(t, "user-123", time.Time{})

		claims, err := session.ParseClaims(token)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.IsZero())
		assert.False(t, claims.Expired())
	})

	t.Run("rejects a non-JWT credential", func(t *testing.T) {
		_, err := session.ParseClaims("not-a-jwt")
		assert.ErrorIs(t, err, session.ErrMalformedToken)
	})
}
