package cli

import (
	"context"
	"fmt"

	"github.com/dmsantos/moviestream/internal/client/models"
)

const (
	heroPageSize     = 1
	carouselPageSize = 8
	carouselGenres   = 4
)

// Home renders the landing view: the most-viewed movie as the hero banner,
// followed by one carousel per genre (bounded to the first few genres).
func (a *App) Home(ctx context.Context) error {
	if !a.admit(ctx, true) {
		return nil
	}

	hero, err := a.movies.Movies(ctx, models.MovieQuery{PageSize: heroPageSize, Sort: "views"})
	if err != nil {
		printlnFn("Could not load the home view:", err.Error())
		return err
	}
	if len(hero.Items) > 0 {
		top := hero.Items[0]
		printlnFn("=== Featured ===")
		printlnFn(fmt.Sprintf("%s (%d views)", top.Name, top.Views))
		printlnFn(top.Synopsis)
	}

	genres, err := a.movies.Genres(ctx)
	if err != nil {
		printlnFn("Could not load genres:", err.Error())
		return err
	}

	for i, genre := range genres {
		if i >= carouselGenres {
			break
		}
		list, err := a.movies.Movies(ctx, models.MovieQuery{GenreID: genre.ID, PageSize: carouselPageSize})
		if err != nil {
			printlnFn("Could not load genre", genre.Name+":", err.Error())
			continue
		}
		printlnFn("---", genre.Name, "---")
		printMovieList(list.Items)
	}
	return nil
}

func printMovieList(movies []models.MovieSummary) {
	if len(movies) == 0 {
		printlnFn("  (nothing here yet)")
		return
	}
	for _, movie := range movies {
		printlnFn(fmt.Sprintf("  %s  %s", movie.ID, movie.Name))
	}
}
