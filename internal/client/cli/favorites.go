package cli

import (
	"context"
	"errors"

	"github.com/dmsantos/moviestream/internal/client/api"
)

// ToggleFavorite flips a movie's favorite state. A 409 on add means the
// server already had it; the local state is forced to favorited instead of
// being reverted.
func (a *App) ToggleFavorite(ctx context.Context, movieID string) error {
	if !a.admit(ctx, true) {
		return nil
	}

	profileID := a.auth.ProfileID()

	favorited, err := a.profiles.IsFavorite(ctx, profileID, movieID)
	if err != nil {
		printlnFn("Could not check favorites:", err.Error())
		return err
	}

	if favorited {
		if err := a.profiles.RemoveFavorite(ctx, profileID, movieID); err != nil {
			printlnFn("Could not remove favorite:", err.Error())
			return err
		}
		printlnFn("Removed from favorites.")
		return nil
	}

	err = a.profiles.AddFavorite(ctx, profileID, movieID)
	switch {
	case err == nil:
		printlnFn("Added to favorites.")
	case errors.Is(err, api.ErrConflict):
		// the membership scan was stale; trust the server
		printlnFn("Already in favorites.")
	default:
		printlnFn("Could not add favorite:", err.Error())
		return err
	}
	return nil
}

// Favorites lists the viewer's favorite movies (first page).
func (a *App) Favorites(ctx context.Context) error {
	if !a.admit(ctx, true) {
		return nil
	}

	list, err := a.profiles.Favorites(ctx, a.auth.ProfileID(), 1, 0)
	if err != nil {
		printlnFn("Could not load favorites:", err.Error())
		return err
	}
	printlnFn("=== Favorites ===")
	printMovieList(list.Items)
	return nil
}
