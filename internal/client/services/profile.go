package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/client/session"
	"github.com/dmsantos/moviestream/internal/logging"
)

const (
	defaultFavoritesPageSize = 20

	// membershipPageSize bounds the favorites page used for the membership
	// scan. The check is a linear scan over this single page.
	membershipPageSize = 100

	// defaultAvatarURL is used when the viewer skips the avatar upload.
	defaultAvatarURL = "https://upload.wikimedia.org/wikipedia/commons/0/0b/Netflix-avatar.png"
)

// ProfileService owns the profile half of the session state.
type ProfileService interface {
	// Fetch loads the viewer's profile and caches it. A 404 propagates as
	// api.ErrNotFound: the profile does not exist yet.
	Fetch(ctx context.Context, id string) (models.Profile, error)

	// Create performs the one-time profile setup. On success the full
	// profile record is constructed locally and cached, avoiding a refetch.
	Create(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error)

	Favorites(ctx context.Context, profileID string, page, pageSize int) (models.PagedList[models.MovieSummary], error)
	FavoriteIDs(ctx context.Context, profileID string) ([]string, error)
	IsFavorite(ctx context.Context, profileID, movieID string) (bool, error)

	// AddFavorite registers a favorite. A 409 propagates as api.ErrConflict
	// so the caller can reconcile its local state.
	AddFavorite(ctx context.Context, profileID, movieID string) error
	RemoveFavorite(ctx context.Context, profileID, movieID string) error
}

type profileService struct {
	api      apiClient
	state    *session.State
	validate *validator.Validate
	logger   logging.Logger
}

func NewProfileService(api apiClient, state *session.State, logger logging.Logger) ProfileService {
	return &profileService{
		api:      api,
		state:    state,
		validate: newValidator(),
		logger:   logger,
	}
}

// Fetch resolves the profile of the authenticated viewer. The id parameter
// documents the keying (profile id == identity id) but the endpoint derives
// the viewer from the bearer token.
func (p *profileService) Fetch(ctx context.Context, id string) (models.Profile, error) {
	var profile models.Profile
	if err := p.api.Get(ctx, "/api/profiles", nil, &profile); err != nil {
		return models.Profile{}, err
	}
	p.state.SetProfile(profile)
	return profile, nil
}

func (p *profileService) Create(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error) {
	if req.ImageURL == "" {
		req.ImageURL = defaultAvatarURL
	}
	if err := p.validate.Struct(req); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile: %s", validationMessage(err))
	}

	if err := p.api.Post(ctx, "/api/profiles", req, nil); err != nil {
		return models.Profile{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.Profile{
		ID:          req.ID,
		UserName:    req.UserName,
		ImageURL:    req.ImageURL,
		CreatedDate: now,
		UpdatedDate: now,
	}
	p.state.SetProfile(profile)

	p.logger.Info(ctx, "profile created", "user_name", req.UserName)
	return profile, nil
}

func (p *profileService) Favorites(ctx context.Context, profileID string, page, pageSize int) (models.PagedList[models.MovieSummary], error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultFavoritesPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var list models.PagedList[models.MovieSummary]
	if err := p.api.Get(ctx, "/api/profiles/favorites", query, &list); err != nil {
		return models.PagedList[models.MovieSummary]{}, err
	}
	return list, nil
}

// FavoriteIDs fetches the first membership page and maps it to movie ids.
func (p *profileService) FavoriteIDs(ctx context.Context, profileID string) ([]string, error) {
	list, err := p.Favorites(ctx, profileID, 1, membershipPageSize)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list.Items))
	for _, movie := range list.Items {
		ids = append(ids, movie.ID)
	}
	return ids, nil
}

// IsFavorite tests membership with a linear scan over one bounded page.
func (p *profileService) IsFavorite(ctx context.Context, profileID, movieID string) (bool, error) {
	ids, err := p.FavoriteIDs(ctx, profileID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (p *profileService) AddFavorite(ctx context.Context, profileID, movieID string) error {
	if err := uuid.Validate(movieID); err != nil {
		return fmt.Errorf("invalid movie id %q: %w", movieID, err)
	}
	return p.api.Post(ctx, "/api/profiles/favorites", models.RegisterFavoriteRequest{MovieID: movieID}, nil)
}

func (p *profileService) RemoveFavorite(ctx context.Context, profileID, movieID string) error {
	if err := uuid.Validate(movieID); err != nil {
		return fmt.Errorf("invalid movie id %q: %w", movieID, err)
	}
	return p.api.Delete(ctx, "/api/profiles/favorites/"+movieID)
}
