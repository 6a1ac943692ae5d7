package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmsantos/moviestream/internal/client/api"
	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/client/session"
)

const movieID = "11111111-2222-3333-4444-555555555555"

func favoritesPage(ids ...string) models.PagedList[models.MovieSummary] {
	items := make([]models.MovieSummary, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.MovieSummary{ID: id})
	}
	return models.PagedList[models.MovieSummary]{Items: items, TotalCount: len(items)}
}

func TestFetch_CachesProfile(t *testing.T) {
	fake := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error {
			*(out.(*models.Profile)) = models.Profile{ID: "p1", UserName: "carlos"}
			return nil
		},
	}
	state := session.NewState()
	svc := NewProfileService(fake, state, testLogger())

	profile, err := svc.Fetch(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "carlos", profile.UserName)
	assert.Equal(t, []string{"/api/profiles"}, fake.paths())

	cached, ok := state.Profile()
	require.True(t, ok)
	assert.Equal(t, "carlos", cached.UserName)
}

func TestFetch_NotFoundPropagates(t *testing.T) {
	fake := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error { return api.ErrNotFound },
	}
	state := session.NewState()
	svc := NewProfileService(fake, state, testLogger())

	_, err := svc.Fetch(context.Background(), "p1")
	require.ErrorIs(t, err, api.ErrNotFound)

	_, ok := state.Profile()
	assert.False(t, ok)
}

func TestCreate_DefaultsAvatarAndCachesOptimistically(t *testing.T) {
	var sent models.CreateProfileRequest
	fake := &fakeAPI{
		postFn: func(path string, body, out any) error {
			sent = body.(models.CreateProfileRequest)
			return nil
		},
	}
	state := session.NewState()
	svc := NewProfileService(fake, state, testLogger())

	profile, err := svc.Create(context.Background(), models.CreateProfileRequest{
		ID:       movieID,
		UserName: "carlos",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/profiles"}, fake.paths())
	assert.Equal(t, defaultAvatarURL, sent.ImageURL)

	// the record is built locally, no refetch
	assert.Equal(t, movieID, profile.ID)
	assert.Equal(t, "carlos", profile.UserName)
	assert.NotEmpty(t, profile.CreatedDate)
	assert.Equal(t, profile.CreatedDate, profile.UpdatedDate)

	cached, ok := state.Profile()
	require.True(t, ok)
	assert.Equal(t, "carlos", cached.UserName)
}

func TestCreate_KeepsExplicitAvatar(t *testing.T) {
	var sent models.CreateProfileRequest
	fake := &fakeAPI{
		postFn: func(path string, body, out any) error {
			sent = body.(models.CreateProfileRequest)
			return nil
		},
	}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	_, err := svc.Create(context.Background(), models.CreateProfileRequest{
		UserName: "carlos",
		ImageURL: "https://example.org/me.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/me.png", sent.ImageURL)
}

func TestCreate_ValidationFailures(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	_, err := svc.Create(context.Background(), models.CreateProfileRequest{UserName: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userName")

	_, err = svc.Create(context.Background(), models.CreateProfileRequest{ID: "not-a-uuid", UserName: "carlos"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")

	assert.Empty(t, fake.calls)
}

func TestFavorites_DefaultsPaging(t *testing.T) {
	var gotQuery url.Values
	fake := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error {
			gotQuery = query
			*(out.(*models.PagedList[models.MovieSummary])) = favoritesPage(movieID)
			return nil
		},
	}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	list, err := svc.Favorites(context.Background(), "p1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("pageSize"))
	assert.Equal(t, []string{"/api/profiles/favorites"}, fake.paths())
}

func TestIsFavorite_ScansOneBoundedPage(t *testing.T) {
	var gotQuery url.Values
	fake := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error {
			gotQuery = query
			*(out.(*models.PagedList[models.MovieSummary])) = favoritesPage("other-id", movieID)
			return nil
		},
	}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	got, err := svc.IsFavorite(context.Background(), "p1", movieID)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "100", gotQuery.Get("pageSize"))

	got, err = svc.IsFavorite(context.Background(), "p1", "absent-id")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAddFavorite(t *testing.T) {
	var sent models.RegisterFavoriteRequest
	fake := &fakeAPI{
		postFn: func(path string, body, out any) error {
			sent = body.(models.RegisterFavoriteRequest)
			return nil
		},
	}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	require.NoError(t, svc.AddFavorite(context.Background(), "p1", movieID))
	assert.Equal(t, []string{"/api/profiles/favorites"}, fake.paths())
	assert.Equal(t, movieID, sent.MovieID)
}

func TestAddFavorite_InvalidIDShortCircuits(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	require.Error(t, svc.AddFavorite(context.Background(), "p1", "nope"))
	assert.Empty(t, fake.calls)
}

func TestAddFavorite_ConflictPropagates(t *testing.T) {
	fake := &fakeAPI{
		postFn: func(path string, body, out any) error { return api.ErrConflict },
	}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	err := svc.AddFavorite(context.Background(), "p1", movieID)
	require.ErrorIs(t, err, api.ErrConflict)
}

func TestRemoveFavorite(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewProfileService(fake, session.NewState(), testLogger())

	require.NoError(t, svc.RemoveFavorite(context.Background(), "p1", movieID))
	assert.Equal(t, []string{"/api/profiles/favorites/" + movieID}, fake.paths())

	require.Error(t, svc.RemoveFavorite(context.Background(), "p1", "nope"))
	assert.Len(t, fake.calls, 1)
}
