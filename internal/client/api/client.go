// Package api implements the REST dispatcher: the single chokepoint every
// remote call goes through. It attaches the bearer token, unwraps the
// server's response envelope, and maps error statuses to sentinel errors.
// A 401 on any endpoint triggers the registered unauthorized hook (forced
// logout) before the caller sees the error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmsantos/moviestream/internal/logging"
)

// envelope mirrors the server's ResponseBase wrapper.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
}

// errorBody mirrors the server's error shapes: either a list of field
// errors or a single message.
type errorBody struct {
	Errors  []string `json:"errors"`
	Message string   `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  logging.Logger

	onUnauthorized func(ctx context.Context)
}

func New(baseURL string, tokens TokenReader, timeout time.Duration, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{tokens: tokens, base: http.DefaultTransport},
		},
		timeout: timeout,
		logger:  logger,
	}
}

// OnUnauthorized registers the hook invoked whenever a response comes back
// 401. The hook must be idempotent: concurrent calls may each observe a 401
// from the same expired session.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

// HTTPClient exposes the authenticated http.Client for callers that fetch
// resources outside the API base URL (e.g. playback manifests).
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug(ctx, "dispatching request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeSuccess(resp.Body, out)
	}
	return c.mapError(ctx, method, path, resp)
}

// decodeSuccess unwraps the {data, statusCode, message} envelope into out.
// Endpoints that return no body (favorites add/remove) pass out == nil.
func decodeSuccess(body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// only objects can carry the envelope; the genres endpoint answers with
	// a bare array
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		// some endpoints skip the envelope and return the payload directly
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// mapError translates an error status into the client's error taxonomy.
// 401 handling happens here, before the caller's error handling, so the
// forced logout is guaranteed no matter which endpoint answered.
func (c *Client) mapError(ctx context.Context, method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	msg := errorMessage(raw)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.logger.Error(ctx, "unauthorized response, forcing logout", "method", method, "path", path)
		if fn := c.onUnauthorized; fn != nil {
			fn(ctx)
		}
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}

	if resp.StatusCode >= 500 {
		if msg == "" {
			return ErrUnavailable
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}

	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// errorMessage derives a displayable string from an error body: the joined
// field errors when present, otherwise the single message.
func errorMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if len(body.Errors) > 0 {
		return strings.Join(body.Errors, "; ")
	}
	return body.Message
}
