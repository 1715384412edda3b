package services

import (
	"context"
	"errors"

	"github.com/Faizan-Cheema/popstream/internal/client/api"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

var (
	// ErrInvalidCredentials is returned by SignIn when the server rejects
	// the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResetLink marks a password reset link that is invalid or
	// has expired; the reset form must not be shown.
	ErrInvalidResetLink = errors.New("invalid or expired password reset link")
)

// ValidationError is a local, pre-submission failure. No network call was
// made when one of these is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// forceSignOut tears down the local session when the server rejected the
// access credential. Every flow funnels its gateway errors through here,
// including the nominally unauthenticated ones (a stale session still rides
// along as a bearer header), so the store is empty after any unauthorized
// response no matter which flow triggered it. The original error is
// returned unchanged; a nil error passes through untouched.
func forceSignOut(ctx context.Context, sessions *session.Store, log logging.Logger, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := sessions.Clear(ctx); clearErr != nil {
			log.Error(ctx, "failed to clear session after unauthorized response", "error", clearErr)
		} else {
			log.Info(ctx, "session rejected by server, signed out locally")
		}
	}
	return err
}
