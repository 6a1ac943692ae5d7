package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps 404 responses. On the profile endpoint it is the
	// authoritative "profile does not exist yet" signal.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps 409 responses (e.g. favorite already registered).
	ErrConflict = errors.New("conflict")

	// ErrUnavailable maps 5xx responses and transport failures.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired is returned to the original caller after a 401 has
	// already forced a logout. The message is user-facing.
	ErrSessionExpired = errors.New("Sessão expirada. Faça login novamente.")
)

// APIError carries a non-401/404/409 client error with the message the
// server attached to it (single message or joined field errors).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}
