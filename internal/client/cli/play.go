package cli

import (
	"context"
	"os"
)

// Play prepares the movie's HLS manifest for playback: the playlist is
// fetched through the authenticated transport, segment URLs are rewritten
// to the streaming origin, and the result is written to a temp file for an
// external player.
func (a *App) Play(ctx context.Context, movieID string) error {
	if !a.admit(ctx, true) {
		return nil
	}

	details, err := a.movies.MovieByID(ctx, movieID)
	if err != nil {
		printlnFn("Could not load movie:", err.Error())
		return err
	}
	if details.PathM3U8File == "" {
		printlnFn("No stream is available for", details.Name)
		return nil
	}

	manifest, err := a.player.Prepare(ctx, details.PathM3U8File)
	if err != nil {
		printlnFn("Could not prepare the stream:", err.Error())
		return err
	}

	f, err := os.CreateTemp("", "moviestream-*.m3u8")
	if err != nil {
		printlnFn("Could not write the manifest:", err.Error())
		return err
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.Write(manifest); err != nil {
		printlnFn("Could not write the manifest:", err.Error())
		return err
	}

	printlnFn("Manifest ready:", f.Name())
	printlnFn("Open it with your player, e.g.: mpv", f.Name())
	return nil
}
