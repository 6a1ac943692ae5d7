package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmsantos/moviestream/internal/client/credentials"
	"github.com/dmsantos/moviestream/internal/client/models"
	"github.com/dmsantos/moviestream/internal/client/session"
	"github.com/dmsantos/moviestream/internal/logging"
)

// Claim keys inside the access token payload. The email lives under the
// namespaced key the identity provider emits.
const (
	idClaim    = "Id"
	emailClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

// AuthService owns the identity half of the session state.
//
// Contract:
//   - Login/Register: authenticate against the server, persist the token
//     pair, set the identity. Failures surface as displayable errors and
//     leave both the store and the session untouched.
//   - Logout: clear tokens and identity; callable at any time, including
//     when nobody is logged in.
//   - Restore: rebuild the identity from a stored token at startup.
//   - ProfileID: the identity's id, or "" when unknown.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, userName, email, password string) error
	Logout(ctx context.Context)
	Restore(ctx context.Context)
	ProfileID() string
}

type authService struct {
	api      apiClient
	store    credentials.Store
	state    *session.State
	validate *validator.Validate
	logger   logging.Logger
}

func NewAuthService(api apiClient, store credentials.Store, state *session.State, logger logging.Logger) AuthService {
	return &authService{
		api:      api,
		store:    store,
		state:    state,
		validate: newValidator(),
		logger:   logger,
	}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.validate.Struct(req); err != nil {
		return errors.New(validationMessage(err))
	}

	var pair models.TokenPair
	if err := a.api.Post(ctx, "/api/auth/login", req, &pair); err != nil {
		return err
	}

	if err := a.store.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist tokens: %w", err)
	}
	a.state.SetIdentity(models.Identity{Email: email})

	a.logger.Info(ctx, "logged in", "email", email)
	return nil
}

func (a *authService) Register(ctx context.Context, userName, email, password string) error {
	req := models.RegisterRequest{UserName: userName, Email: email, Password: password}
	if err := a.validate.Struct(req); err != nil {
		return errors.New(validationMessage(err))
	}

	var pair models.TokenPair
	if err := a.api.Post(ctx, "/api/auth/register", req, &pair); err != nil {
		return err
	}

	if err := a.store.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist tokens: %w", err)
	}
	a.state.SetIdentity(models.Identity{Email: email, Name: userName})

	a.logger.Info(ctx, "registered", "email", email)
	return nil
}

// Logout clears the stored tokens and the in-memory identity (which also
// drops any cached profile). A second call is a no-op.
func (a *authService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "failed to clear stored credentials", "error", err)
	}
	a.state.ClearIdentity()
}

// Restore rebuilds the identity from a previously stored access token. The
// token's payload (second dot-separated segment) is decoded without
// signature verification; the server remains the authority on validity.
// Decode failures are logged and swallowed: the identity stays empty and
// the first authenticated call decides the session's fate.
func (a *authService) Restore(ctx context.Context) {
	cred, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to load stored credentials", "error", err)
		return
	}
	if cred.AccessToken == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred.AccessToken, claims); err != nil {
		a.logger.Warn(ctx, "stored access token is not decodable", "error", err)
		return
	}

	email, _ := claims[emailClaim].(string)
	if email == "" {
		a.logger.Warn(ctx, "stored access token carries no email claim")
		return
	}
	id, _ := claims[idClaim].(string)

	// Expiry is logged but does not gate admission; a stale token is caught
	// by the first 401.
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		a.logger.Info(ctx, "session restored", "email", email, "token_expires", exp.Time)
	} else {
		a.logger.Info(ctx, "session restored", "email", email)
	}

	a.state.SetIdentity(models.Identity{ID: id, Email: email})
}

// ProfileID returns the id claim of the current identity. Callers must
// treat "" as "no profile id available", not as a valid id.
func (a *authService) ProfileID() string {
	identity, ok := a.state.Identity()
	if !ok {
		return ""
	}
	return identity.ID
}
