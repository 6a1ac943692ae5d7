// Package guard implements the admission checks that run before a protected
// view opens. The chain is ordered: the authentication guard must pass
// before the profile guard runs, because the profile lookup depends on a
// usable identity.
package guard

import (
	"context"
	"errors"

	"github.com/dmsantos/moviestream/internal/client/api"
	"github.com/dmsantos/moviestream/internal/client/credentials"
	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/client/session"
	"github.com/dmsantos/moviestream/internal/logging"
)

// Route names a navigation target a denied admission redirects to.
type Route int

const (
	RouteNone Route = iota
	RouteLogin
	RouteSetupProfile
)

// Decision is the outcome of an admission check: either allowed, or denied
// with a redirect target.
type Decision struct {
	Allowed  bool
	Redirect Route
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(r Route) Decision {
	return Decision{Redirect: r}
}

// profileFetcher is the slice of the profile flow the guard needs.
type profileFetcher interface {
	Fetch(ctx context.Context, id string) (models.Profile, error)
}

// profileIDSource resolves the current identity's id ("" when unknown).
type profileIDSource interface {
	ProfileID() string
}

type Chain struct {
	store    credentials.Store
	state    *session.State
	auth     profileIDSource
	profiles profileFetcher
	logger   logging.Logger
}

func NewChain(store credentials.Store, state *session.State, auth profileIDSource, profiles profileFetcher, logger logging.Logger) *Chain {
	return &Chain{
		store:    store,
		state:    state,
		auth:     auth,
		profiles: profiles,
		logger:   logger,
	}
}

// Authenticate admits anyone holding an access token. The identity may
// still be empty right after a cold start; admission is then provisional
// and the first 401 forces a logout through the dispatcher.
func (c *Chain) Authenticate(ctx context.Context) Decision {
	token, err := c.store.AccessToken(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to read stored token", "error", err)
		return redirect(RouteLogin)
	}
	if token == "" {
		return redirect(RouteLogin)
	}
	return allow()
}

// RequireProfile admits only viewers with an existing profile. A cached
// profile short-circuits without touching the network. A missing profile
// (404) routes to setup; every other failure fails closed to login.
func (c *Chain) RequireProfile(ctx context.Context) Decision {
	if _, ok := c.state.Profile(); ok {
		return allow()
	}

	_, err := c.profiles.Fetch(ctx, c.auth.ProfileID())
	switch {
	case err == nil:
		return allow()
	case errors.Is(err, api.ErrNotFound):
		return redirect(RouteSetupProfile)
	default:
		c.logger.Warn(ctx, "profile check failed, denying access", "error", err)
		return redirect(RouteLogin)
	}
}

// Admit runs the chain for a protected navigation. RequireProfile is only
// reachable once Authenticate has passed.
func (c *Chain) Admit(ctx context.Context, needsProfile bool) Decision {
	decision := c.Authenticate(ctx)
	if !decision.Allowed || !needsProfile {
		return decision
	}
	return c.RequireProfile(ctx)
}
