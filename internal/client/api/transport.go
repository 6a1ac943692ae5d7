package api

import (
	"context"
	"net/http"
)

// TokenReader provides the current access token. An empty string means
// nobody is logged in and the request goes out unauthenticated.
type TokenReader interface {
	AccessToken(ctx context.Context) (string, error)
}

// authTransport attaches the stored access token as a bearer credential on
// every outbound request. The token is re-read per request so a login or
// logout is picked up without rebuilding the client.
type authTransport struct {
	tokens TokenReader
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.AccessToken(req.Context())
	if err == nil && token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Bearer "+token)
		req = clone
	}
	return t.base.RoundTrip(req)
}
