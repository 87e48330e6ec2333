package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")

	// ErrUnauthorized is the uniform outcome for every client-caused refresh
	// failure: malformed token, expired token, unknown or revoked session,
	// superseded token. Callers must not learn which one it was.
	ErrUnauthorized = errors.New("unauthorized")
)
