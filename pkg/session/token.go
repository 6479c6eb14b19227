package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the subset of the backend JWT payload the client can use:
// the user identifier and the token expiry. The client holds no signing key,
// so the claims are decoded without verification — they are a display hint,
// never an authorization decision. Whether a credential is actually valid is
// decided solely by the backend.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry lies in the past. A token without
// an exp claim is never considered expired client-side.
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// ParseClaims decodes the payload of a bearer token without verifying its
// signature.
func ParseClaims(token string) (*Claims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	out := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
