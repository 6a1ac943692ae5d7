package cli

import (
	"context"
	"os"

	"github.com/dmsantos/moviestream/internal/client/models"
)

// SetupProfile runs the one-time profile creation view. The profile id is
// taken from the identity; the avatar defaults when the prompt is skipped.
// On success navigation proceeds to home.
func (a *App) SetupProfile(ctx context.Context) error {
	// only authentication is required here; requiring a profile would loop
	if !a.admit(ctx, false) {
		return nil
	}

	userName, err := getSimpleText(a.reader, "Choose a profile name", os.Stdout)
	if err != nil {
		return err
	}

	imageURL, err := getSimpleText(a.reader, "Avatar URL (leave empty for the default)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateProfileRequest{
		ID:       a.auth.ProfileID(),
		UserName: userName,
		ImageURL: imageURL,
	}

	if _, err := a.profiles.Create(ctx, req); err != nil {
		printlnFn("Could not create profile:", err.Error())
		return err
	}

	printlnFn("Profile created. Welcome,", userName+"!")
	return a.openHome(ctx)
}
