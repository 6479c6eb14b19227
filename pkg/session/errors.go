package session

import "errors"

var (
	// ErrInvalidCredentials indicates the backend rejected the login
	ErrInvalidCredentials = errors.New("session.invalid_credentials")

	// ErrRegistrationFailed indicates the backend rejected the registration
	ErrRegistrationFailed = errors.New("session.registration_failed")

	// ErrSuperseded indicates a newer operation took over before this one
	// resolved, so its result was discarded
	ErrSuperseded = errors.New("session.superseded")

	// ErrTokenNotFound indicates the credential slot is empty
	ErrTokenNotFound = errors.New("session.token_not_found")

	// ErrMalformedToken indicates the credential is not a decodable JWT
	ErrMalformedToken = errors.New("session.malformed_token")
)
