package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Faizan-Cheema/popstream/internal/client/services"
)

// sleepFn is a test seam for the post-reset pause.
var sleepFn = time.Sleep

// ForgotPassword asks for an email address and requests a reset link. The
// server replies with the same message whether or not the address is
// registered, and that message is relayed verbatim.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// ResetPassword consumes a reset link received by email. The link carries a
// uid and a token; both are validated before the new password is asked for.
// An invalid or expired link is terminal: the flow stops without prompting
// for a password and the user has to request a fresh link.
func (a *App) ResetPassword(ctx context.Context) error {
	uid, err := getSimpleText(a.reader, "Enter reset link uid", a.out)
	if err != nil {
		return err
	}

	token, err := getSimpleText(a.reader, "Enter reset link token", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ValidateResetLink(ctx, uid, token); err != nil {
		if errors.Is(err, services.ErrInvalidResetLink) {
			fmt.Fprintln(a.out, "The password reset link is invalid or has expired. Please request a new one.")
			return nil
		}
		a.renderError(err)
		return err
	}

	password, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return err
	}

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}

	msg, err := a.auth.ResetPassword(ctx, uid, token, password, confirm)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	sleepFn(a.navDelay)
	fmt.Fprintln(a.out, "You can now login with your new password.")
	return nil
}
