package cli

import (
	"context"
	"fmt"

	"github.com/Faizan-Cheema/popstream/internal/client/services"
)

// Profile fetches and prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.profile.Profile(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintf(a.out, "Email:      %s\n", u.Email)
	fmt.Fprintf(a.out, "Username:   %s\n", u.Username)
	fmt.Fprintf(a.out, "First name: %s\n", u.FirstName)
	fmt.Fprintf(a.out, "Last name:  %s\n", u.LastName)
	return nil
}

// editProfileField is the shared flow behind the set* commands: fetch the
// current profile, show the current value, read a new one, and submit only
// if it differs.
func (a *App) editProfileField(ctx context.Context, label string, current func(services.User) string, apply func(*services.ProfileUpdate, string)) error {
	u, err := a.profile.Profile(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}

	value, err := getSimpleText(a.reader, fmt.Sprintf("Enter %s (current: %q)", label, current(u)), a.out)
	if err != nil {
		return err
	}

	var upd services.ProfileUpdate
	apply(&upd, value)

	_, changed, err := a.profile.Update(ctx, u, upd)
	if err != nil {
		a.renderError(err)
		return err
	}
	if !changed {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) SetUsername(ctx context.Context) error {
	return a.editProfileField(ctx, "username",
		func(u services.User) string { return u.Username },
		func(upd *services.ProfileUpdate, v string) { upd.Username = &v })
}

func (a *App) SetFirstName(ctx context.Context) error {
	return a.editProfileField(ctx, "first name",
		func(u services.User) string { return u.FirstName },
		func(upd *services.ProfileUpdate, v string) { upd.FirstName = &v })
}

func (a *App) SetLastName(ctx context.Context) error {
	return a.editProfileField(ctx, "last name",
		func(u services.User) string { return u.LastName },
		func(upd *services.ProfileUpdate, v string) { upd.LastName = &v })
}

// SetAvatar uploads a new profile image from a local path.
func (a *App) SetAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to profile image", a.out)
	if err != nil {
		return err
	}

	if err := a.profile.UpdateAvatar(ctx, path); err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, "Profile image updated.")
	return nil
}
