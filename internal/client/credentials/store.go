// Package credentials persists the session token pair in durable local
// storage. Tokens are stored as two independent key/value rows and survive
// process restarts; no validation of token shape happens here.
package credentials

import (
	"context"

	"github.com/dmsantos/moviestream/internal/client/models"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

type Store interface {
	// Save persists both tokens atomically.
	Save(ctx context.Context, accessToken, refreshToken string) error

	// Load returns the stored credential. A zero Credential with nil error
	// means nothing is stored.
	Load(ctx context.Context) (models.Credential, error)

	// Clear removes all stored tokens. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	// AccessToken returns just the access token ("" when absent).
	AccessToken(ctx context.Context) (string, error)
}
