package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Faizan-Cheema/popstream/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts the user for the registration form and attempts to create a
// new account. The profile image is optional; an empty path skips the upload.
//
// A successful sign-up does not start a session. The user is told to log in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	avatar, err := getSimpleText(a.reader, "Path to profile image (optional, leave empty to skip)", a.out)
	if err != nil {
		return err
	}

	err = a.auth.SignUp(ctx, services.SignUpParams{
		Email:           email,
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
		AvatarPath:      avatar,
	})
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. Please login.")
	return nil
}

// SignIn prompts the user for credentials and tries to authenticate.
// Answering "y" to the remember-me prompt keeps the session on disk so it
// survives a restart; otherwise it lives only for this process.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	remember, err := getSimpleText(a.reader, "Remember me? (y/N)", a.out)
	if err != nil {
		return err
	}

	s, err := a.auth.SignIn(ctx, email, password, strings.EqualFold(remember, "y"))
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.Username)
	if exp, ok := s.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Session valid until %s\n", exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// SignOut signs the user out and clears the stored session.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		a.renderError(err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
