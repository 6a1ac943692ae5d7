package cli

import (
	"context"
	"os"

	"github.com/dmsantos/moviestream/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server. On
// success the token pair is stored, the identity is set, and navigation
// proceeds to home — where the guard chain may detour to profile setup.
//
// The password byte slice is securely wiped before returning. Auth failures
// are printed as the displayable message the auth flow produced.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return a.openHome(ctx)
}

// Register prompts for a user name, email, and password and creates a new
// account. The contract matches Login, with the display name set as well.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, email, string(password)); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return a.openHome(ctx)
}

// Logout clears the stored tokens and the session. Safe to call twice.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	identity, ok := a.state.Identity()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	if profile, ok := a.state.Profile(); ok {
		printlnFn("Logged in as", identity.Email, "with profile", profile.UserName)
		return nil
	}
	printlnFn("Logged in as", identity.Email)
	return nil
}
