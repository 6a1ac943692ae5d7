package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/logging"
)

const (
	defaultMoviesPage     = 1
	defaultMoviesPageSize = 30
)

// MovieService exposes the read-only movie catalog. The genre list is
// fetched once per session and cached; everything else is paged through
// the dispatcher.
type MovieService interface {
	Movies(ctx context.Context, q models.MovieQuery) (models.PagedList[models.MovieSummary], error)
	MovieByID(ctx context.Context, id string) (models.MovieDetails, error)
	Genres(ctx context.Context) ([]models.GenreSummary, error)
	GenreBySlug(ctx context.Context, slug string) (*models.GenreSummary, error)
}

type movieService struct {
	api    apiClient
	logger logging.Logger

	mu     sync.Mutex
	genres []models.GenreSummary
}

func NewMovieService(api apiClient, logger logging.Logger) MovieService {
	return &movieService{api: api, logger: logger}
}

func (m *movieService) Movies(ctx context.Context, q models.MovieQuery) (models.PagedList[models.MovieSummary], error) {
	if q.Page <= 0 {
		q.Page = defaultMoviesPage
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultMoviesPageSize
	}

	// empty filters are omitted so the server-side Guid validation is not hit
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.GenreID != "" {
		query.Set("genreId", q.GenreID)
	}
	if q.SearchTerm != "" {
		query.Set("searchTerm", q.SearchTerm)
	}
	if q.ReleaseYear != 0 {
		query.Set("releaseYear", strconv.Itoa(q.ReleaseYear))
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}

	var list models.PagedList[models.MovieSummary]
	if err := m.api.Get(ctx, "/api/movies", query, &list); err != nil {
		return models.PagedList[models.MovieSummary]{}, err
	}
	return list, nil
}

func (m *movieService) MovieByID(ctx context.Context, id string) (models.MovieDetails, error) {
	if err := uuid.Validate(id); err != nil {
		return models.MovieDetails{}, fmt.Errorf("invalid movie id %q: %w", id, err)
	}

	var details models.MovieDetails
	if err := m.api.Get(ctx, "/api/movies/"+id, nil, &details); err != nil {
		return models.MovieDetails{}, err
	}
	return details, nil
}

// Genres returns the genre list, fetching it at most once per session.
func (m *movieService) Genres(ctx context.Context) ([]models.GenreSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.genres) > 0 {
		return m.genres, nil
	}

	var genres []models.GenreSummary
	if err := m.api.Get(ctx, "/api/genres", nil, &genres); err != nil {
		return nil, err
	}
	m.genres = genres

	m.logger.Debug(ctx, "genre cache primed", "count", len(genres))
	return genres, nil
}

// GenreBySlug resolves a URL-style slug ("science-fiction") against the
// cached genre names. Returns nil when no genre matches.
func (m *movieService) GenreBySlug(ctx context.Context, slug string) (*models.GenreSummary, error) {
	genres, err := m.Genres(ctx)
	if err != nil {
		return nil, err
	}
	for _, genre := range genres {
		if Slugify(genre.Name) == slug {
			g := genre
			return &g, nil
		}
	}
	return nil, nil
}

// Slugify converts a genre name into its URL form: lowercase, diacritics
// stripped, spaces collapsed to dashes, everything else dropped.
// "Ficção Científica" -> "ficcao-cientifica".
func Slugify(name string) string {
	lower := strings.ToLower(name)

	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), lower)
	if err != nil {
		stripped = lower
	}

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r) && !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
