package services

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/dmsantos/moviestream/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// apiCall records one dispatched request for assertions.
type apiCall struct {
	method string
	path   string
	query  url.Values
	body   any
}

// fakeAPI implements apiClient. Handlers, when set, control results; every
// call is recorded either way.
type fakeAPI struct {
	calls []apiCall

	getFn    func(path string, query url.Values, out any) error
	postFn   func(path string, body, out any) error
	deleteFn func(path string) error
}

func (f *fakeAPI) Get(ctx context.Context, path string, query url.Values, out any) error {
	f.calls = append(f.calls, apiCall{method: "GET", path: path, query: query})
	if f.getFn != nil {
		return f.getFn(path, query, out)
	}
	return nil
}

func (f *fakeAPI) Post(ctx context.Context, path string, body, out any) error {
	f.calls = append(f.calls, apiCall{method: "POST", path: path, body: body})
	if f.postFn != nil {
		return f.postFn(path, body, out)
	}
	return nil
}

func (f *fakeAPI) Delete(ctx context.Context, path string) error {
	f.calls = append(f.calls, apiCall{method: "DELETE", path: path})
	if f.deleteFn != nil {
		return f.deleteFn(path)
	}
	return nil
}

func (f *fakeAPI) paths() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.path)
	}
	return out
}
