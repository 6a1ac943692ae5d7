package playback

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmsantos/moviestream/internal/client/api"
	"github.com/dmsantos/moviestream/internal/logging"
)

const mediaManifest = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-MEDIA-SEQUENCE:0
#EXT-X-TARGETDURATION:10
#EXTINF:10.000,
seg0.ts
#EXTINF:10.000,
/media/seg1.ts
#EXT-X-ENDLIST
`

const masterManifest = `#EXTM3U
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=1280000,RESOLUTION=1280x720
v0/index.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=2560000,RESOLUTION=1920x1080
v1/index.m3u8
`

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func serveManifest(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewPreparer_RejectsRelativeOrigin(t *testing.T) {
	_, err := NewPreparer(http.DefaultClient, "stream.local:8085", testLogger())
	require.Error(t, err)

	_, err = NewPreparer(http.DefaultClient, "", testLogger())
	require.Error(t, err)
}

func TestPrepare_RewritesMediaSegments(t *testing.T) {
	srv := serveManifest(t, mediaManifest)
	p, err := NewPreparer(srv.Client(), "http://stream.local:8085", testLogger())
	require.NoError(t, err)

	out, err := p.Prepare(context.Background(), srv.URL+"/videos/movie.m3u8")
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "http://stream.local:8085/videos/seg0.ts")
	assert.Contains(t, got, "http://stream.local:8085/media/seg1.ts")
	assert.NotContains(t, got, srv.URL, "no segment may point back at the API host")
}

func TestPrepare_RewritesMasterVariants(t *testing.T) {
	srv := serveManifest(t, masterManifest)
	p, err := NewPreparer(srv.Client(), "http://stream.local:8085", testLogger())
	require.NoError(t, err)

	out, err := p.Prepare(context.Background(), srv.URL+"/videos/movie.m3u8")
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "http://stream.local:8085/videos/v0/index.m3u8")
	assert.Contains(t, got, "http://stream.local:8085/videos/v1/index.m3u8")
}

func TestPrepare_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	p, err := NewPreparer(srv.Client(), "http://stream.local:8085", testLogger())
	require.NoError(t, err)

	_, err = p.Prepare(context.Background(), srv.URL+"/videos/movie.m3u8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestPrepare_ServerDown_IsUnavailable(t *testing.T) {
	srv := serveManifest(t, mediaManifest)
	u := srv.URL
	srv.Close()

	p, err := NewPreparer(http.DefaultClient, "http://stream.local:8085", testLogger())
	require.NoError(t, err)

	_, err = p.Prepare(context.Background(), u+"/videos/movie.m3u8")
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestPrepare_GarbageManifest(t *testing.T) {
	srv := serveManifest(t, "this is not a playlist")
	p, err := NewPreparer(srv.Client(), "http://stream.local:8085", testLogger())
	require.NoError(t, err)

	_, err = p.Prepare(context.Background(), srv.URL+"/videos/movie.m3u8")
	require.Error(t, err)
}
