// Package playback prepares HLS manifests for an external player. The
// playlist is fetched through the authenticated transport and every segment
// URI is rewritten to an absolute URL on the streaming origin, so segment
// fetches carry the viewer's credentials. Quality negotiation and media
// decoding stay in the player.
package playback

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/grafov/m3u8"

	"github.com/dmsantos/moviestream/internal/client/api"
	"github.com/dmsantos/moviestream/internal/logging"
)

type Preparer struct {
	http   *http.Client
	origin *url.URL
	logger logging.Logger
}

// NewPreparer builds a Preparer fetching manifests with httpClient (expected
// to be the dispatcher's authenticated client) and re-rooting segments on
// origin.
func NewPreparer(httpClient *http.Client, origin string, logger logging.Logger) (*Preparer, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid streaming origin %q: %w", origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("streaming origin %q must be an absolute URL", origin)
	}
	return &Preparer{http: httpClient, origin: u, logger: logger}, nil
}

// Prepare fetches the playlist at manifestURL and returns it re-encoded
// with every URI rewritten. Master playlists have their variant URIs
// rewritten the same way as media segments.
func (p *Preparer) Prepare(ctx context.Context, manifestURL string) ([]byte, error) {
	base, err := url.Parse(manifestURL)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest url %q: %w", manifestURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest request: %w", err)
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest fetch failed with status %d", resp.StatusCode)
	}

	playlist, kind, err := m3u8.DecodeFrom(resp.Body, true)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	switch kind {
	case m3u8.MEDIA:
		media := playlist.(*m3u8.MediaPlaylist)
		for _, segment := range media.Segments {
			if segment == nil {
				continue
			}
			segment.URI = p.rewrite(ctx, base, segment.URI)
		}
		return media.Encode().Bytes(), nil

	case m3u8.MASTER:
		master := playlist.(*m3u8.MasterPlaylist)
		for _, variant := range master.Variants {
			if variant == nil {
				continue
			}
			variant.URI = p.rewrite(ctx, base, variant.URI)
		}
		return master.Encode().Bytes(), nil
	}

	return nil, fmt.Errorf("unsupported playlist type %d", kind)
}

// rewrite resolves uri against the manifest location, then re-roots it on
// the streaming origin. Unparseable URIs are passed through untouched.
func (p *Preparer) rewrite(ctx context.Context, base *url.URL, uri string) string {
	ref, err := url.Parse(uri)
	if err != nil {
		p.logger.Warn(ctx, "segment uri not rewritable", "uri", uri, "error", err)
		return uri
	}
	abs := base.ResolveReference(ref)
	abs.Scheme = p.origin.Scheme
	abs.Host = p.origin.Host
	return abs.String()
}
