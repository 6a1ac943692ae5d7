package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmsantos/moviestream/internal/client/api"
	"github.com/dmsantos/moviestream/internal/client/config"
	"github.com/dmsantos/moviestream/internal/client/credentials"
	"github.com/dmsantos/moviestream/internal/client/guard"
	"github.com/dmsantos/moviestream/internal/client/playback"
	"github.com/dmsantos/moviestream/internal/client/services"
	"github.com/dmsantos/moviestream/internal/client/session"
	"github.com/dmsantos/moviestream/internal/logging"
)

// admitter is the slice of the guard chain the views consult.
type admitter interface {
	Admit(ctx context.Context, needsProfile bool) guard.Decision
}

// manifestPreparer rewrites an HLS manifest for authenticated playback.
type manifestPreparer interface {
	Prepare(ctx context.Context, manifestURL string) ([]byte, error)
}

type App struct {
	config   *config.Config
	store    *credentials.SQLiteStore
	state    *session.State
	auth     services.AuthService
	profiles services.ProfileService
	movies   services.MovieService
	guards   admitter
	player   manifestPreparer
	logger   logging.Logger
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := credentials.Open(ctx, cfg.CredentialsDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	apiClient := api.New(cfg.APIBaseURL, store, cfg.RequestTimeout, logger)

	state := session.NewState()
	auth := services.NewAuthService(apiClient, store, state, logger)

	// a 401 anywhere forces a logout before the caller sees the error
	apiClient.OnUnauthorized(func(ctx context.Context) {
		auth.Logout(ctx)
	})

	profiles := services.NewProfileService(apiClient, state, logger)
	movies := services.NewMovieService(apiClient, logger)
	guards := guard.NewChain(store, state, auth, profiles, logger)

	player, err := playback.NewPreparer(apiClient.HTTPClient(), cfg.StreamingOrigin, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:   cfg,
		store:    store,
		state:    state,
		auth:     auth,
		profiles: profiles,
		movies:   movies,
		guards:   guards,
		player:   player,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session from stored tokens and starts the REPL. It
// blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close() //nolint:errcheck

	a.auth.Restore(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	_, ok := a.state.Identity()
	return ok
}

func (a *App) getStatus() string {
	identity, ok := a.state.Identity()
	if !ok {
		return ""
	}
	if profile, ok := a.state.Profile(); ok {
		return fmt.Sprintf("(%s)", profile.UserName)
	}
	return fmt.Sprintf("(%s)", identity.Email)
}

// admit runs the guard chain for a protected view and handles redirects:
// a missing profile opens the setup view, a missing session drops the user
// back at the login prompt. Returns false when the view must not open.
func (a *App) admit(ctx context.Context, needsProfile bool) bool {
	decision := a.guards.Admit(ctx, needsProfile)
	if decision.Allowed {
		return true
	}

	switch decision.Redirect {
	case guard.RouteSetupProfile:
		printlnFn("You need a profile before watching anything.")
		_ = a.SetupProfile(ctx)
	case guard.RouteLogin:
		printlnFn("Please log in to continue.")
	}
	return false
}

// openHome is the navigation target after login, register, and profile
// setup. The guard chain decides whether the viewer actually lands on home.
func (a *App) openHome(ctx context.Context) error {
	if !a.admit(ctx, true) {
		return nil
	}
	return a.Home(ctx)
}
