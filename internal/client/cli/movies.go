package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/client/services"
)

// Genres lists all genres with the slugs accepted by the genre command.
func (a *App) Genres(ctx context.Context) error {
	if !a.admit(ctx, true) {
		return nil
	}

	genres, err := a.movies.Genres(ctx)
	if err != nil {
		printlnFn("Could not load genres:", err.Error())
		return err
	}
	for _, genre := range genres {
		printlnFn(fmt.Sprintf("  %-30s %s", genre.Name, services.Slugify(genre.Name)))
	}
	return nil
}

// Genre shows a page of movies for the genre matching slug.
func (a *App) Genre(ctx context.Context, slug string) error {
	if !a.admit(ctx, true) {
		return nil
	}

	genre, err := a.movies.GenreBySlug(ctx, slug)
	if err != nil {
		printlnFn("Could not resolve genre:", err.Error())
		return err
	}
	if genre == nil {
		printlnFn("No genre matches", slug)
		return nil
	}

	list, err := a.movies.Movies(ctx, models.MovieQuery{GenreID: genre.ID})
	if err != nil {
		printlnFn("Could not load movies:", err.Error())
		return err
	}
	printlnFn("===", genre.Name, "===")
	printMovieList(list.Items)
	return nil
}

// Search shows a page of movies matching term.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.admit(ctx, true) {
		return nil
	}

	list, err := a.movies.Movies(ctx, models.MovieQuery{SearchTerm: term})
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%d result(s) for %q", list.TotalCount, term))
	printMovieList(list.Items)
	return nil
}

// Movie shows the details view. The movie details and the favorite
// membership are fetched concurrently and joined before printing; a failed
// membership check degrades to "not favorited" instead of breaking the view.
func (a *App) Movie(ctx context.Context, id string) error {
	if !a.admit(ctx, true) {
		return nil
	}

	var (
		wg        sync.WaitGroup
		details   models.MovieDetails
		detailErr error
		favorited bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, detailErr = a.movies.MovieByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		fav, err := a.profiles.IsFavorite(ctx, a.auth.ProfileID(), id)
		if err != nil {
			a.logger.Warn(ctx, "favorite check failed", "movie_id", id, "error", err)
			return
		}
		favorited = fav
	}()
	wg.Wait()

	if detailErr != nil {
		printlnFn("Could not load movie:", detailErr.Error())
		return detailErr
	}

	printlnFn("===", details.Name, "===")
	printlnFn(details.Synopsis)
	genreNames := make([]string, 0, len(details.Genres))
	for _, genre := range details.Genres {
		genreNames = append(genreNames, genre.Name)
	}
	printlnFn("Genres:", strings.Join(genreNames, ", "))
	printlnFn(fmt.Sprintf("Released: %s  Views: %d", details.ReleaseDate, details.Views))
	if favorited {
		printlnFn("In your favorites.")
	}
	if details.PathM3U8File != "" {
		printlnFn("Play it with: play", details.ID)
	}
	return nil
}
