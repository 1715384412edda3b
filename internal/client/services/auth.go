// Package services contains the application services of the popstream CLI:
// each service turns a user-facing flow (sign-up, sign-in, password reset,
// profile editing, subscription checkout) into gateway calls and session
// store mutations. Flows are stateless between invocations and never retry
// on their own.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Faizan-Cheema/popstream/internal/client/api"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

const minPasswordLength = 8

// SignUpParams carries the registration form. AvatarPath is optional; when
// set, the request goes out as multipart with the image attached.
type SignUpParams struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	AvatarPath      string
}

// AuthService drives account lifecycle flows.
//
// Contract:
//   - SignUp: create an account; success does NOT sign the user in.
//   - SignIn: authenticate and persist a session in the chosen tier.
//   - SignOut: best-effort server-side invalidation, unconditional local teardown.
//   - ForgotPassword: request a reset email; relays the server message as-is.
//   - ValidateResetLink / ResetPassword: consume an out-of-band reset link.
//
// All methods honor context cancellation via the underlying gateway.
type AuthService interface {
	SignUp(ctx context.Context, p SignUpParams) error
	SignIn(ctx context.Context, email, password string, remember bool) (session.Session, error)
	SignOut(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateResetLink(ctx context.Context, uid, token string) error
	ResetPassword(ctx context.Context, uid, token, password, confirm string) (string, error)
}

type authService struct {
	gw       api.Caller
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// session store.
func NewAuthService(gw api.Caller, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{gw: gw, sessions: sessions, log: log.With("component", "auth")}
}

// SignUp validates the form locally and registers the account. The local
// preconditions (password length, confirmation equality) short-circuit
// before any network call.
func (a *authService) SignUp(ctx context.Context, p SignUpParams) error {
	if len(p.Password) < minPasswordLength {
		return &ValidationError{Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if p.Password != p.ConfirmPassword {
		return &ValidationError{Message: "passwords do not match"}
	}

	if p.AvatarPath != "" {
		fields := map[string]string{
			"email":    p.Email,
			"username": p.Username,
			"password": p.Password,
		}
		return forceSignOut(ctx, a.sessions, a.log, a.gw.CallMultipart(ctx, http.MethodPost, "/auth/signup/", fields, "image", p.AvatarPath, nil))
	}

	body := map[string]string{
		"email":    p.Email,
		"username": p.Username,
		"password": p.Password,
	}
	return forceSignOut(ctx, a.sessions, a.log, a.gw.Call(ctx, http.MethodPost, "/auth/signup/", body, nil))
}

// SignIn authenticates against the server and saves the returned credential
// pair. remember selects the durable tier; otherwise the session dies with
// the process. An unauthorized response clears any stale local session and
// maps to ErrInvalidCredentials; other API errors carry the server message
// through unchanged.
func (a *authService) SignIn(ctx context.Context, email, password string, remember bool) (session.Session, error) {
	var resp struct {
		Access   string `json:"access"`
		Refresh  string `json:"refresh"`
		Username string `json:"username"`
	}

	err := a.gw.Call(ctx, http.MethodPost, "/auth/signin/", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		err = forceSignOut(ctx, a.sessions, a.log, err)
		var apiErr *api.APIError
		if errors.As(err, &apiErr) || errors.Is(err, api.ErrUnavailable) {
			return session.Session{}, err
		}
		return session.Session{}, ErrInvalidCredentials
	}

	if resp.Access == "" {
		return session.Session{}, errors.New("sign-in response missing access credential")
	}

	tier := session.TierEphemeral
	if remember {
		tier = session.TierDurable
	}

	s := session.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Email:        email,
		Username:     resp.Username,
		Tier:         tier,
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.log.Info(ctx, "signed in", "email", email, "tier", tier)
	return s, nil
}

// SignOut invalidates the refresh credential server-side (best effort) and
// clears the local session unconditionally. A failed server call is
// reported but never blocks local teardown; signing out while already
// signed out is a no-op.
func (a *authService) SignOut(ctx context.Context) error {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil
		}
		return err
	}

	callErr := a.gw.Call(ctx, http.MethodPost, "/auth/signout/", map[string]string{
		"refresh": s.RefreshToken,
	}, nil)

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "signed out", "email", s.Email)

	if callErr != nil && !errors.Is(callErr, api.ErrUnauthorized) {
		return fmt.Errorf("server sign-out failed: %w", callErr)
	}
	return nil
}

// ForgotPassword requests a password reset email. The server message is
// relayed either way, so the client never reveals whether the address is
// registered.
func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := a.gw.Call(ctx, http.MethodPost, "/auth/forgot-password/", map[string]string{"email": email}, &resp); err != nil {
		return "", forceSignOut(ctx, a.sessions, a.log, err)
	}
	return resp.Message, nil
}

// ValidateResetLink checks the uid/token pair from a reset link before the
// form is shown. Any 4xx from the server means the link is invalid or
// expired and maps to ErrInvalidResetLink.
func (a *authService) ValidateResetLink(ctx context.Context, uid, token string) error {
	err := a.gw.Call(ctx, http.MethodGet, resetPasswordPath(uid, token), nil, nil)
	if err == nil {
		return nil
	}
	err = forceSignOut(ctx, a.sessions, a.log, err)
	if errors.Is(err, api.ErrUnauthorized) {
		return ErrInvalidResetLink
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return ErrInvalidResetLink
	}
	return err
}

// ResetPassword consumes the reset token and sets the new password. The
// confirmation equality precondition is checked locally and never reaches
// the network when violated.
func (a *authService) ResetPassword(ctx context.Context, uid, token, password, confirm string) (string, error) {
	if password != confirm {
		return "", &ValidationError{Message: "passwords do not match"}
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := a.gw.Call(ctx, http.MethodPost, resetPasswordPath(uid, token), map[string]string{"password": password}, &resp); err != nil {
		return "", forceSignOut(ctx, a.sessions, a.log, err)
	}
	return resp.Message, nil
}

func resetPasswordPath(uid, token string) string {
	return fmt.Sprintf("/auth/reset-password/%s/%s/", uid, token)
}
