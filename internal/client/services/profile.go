package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/Faizan-Cheema/popstream/internal/client/api"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

// User is the profile record as the API reports it.
type User struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdate selects which fields to change. A nil pointer leaves the
// field untouched; a pointer to the current value is detected as unchanged.
type ProfileUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
}

// ProfileService reads and edits the signed-in user's profile.
type ProfileService interface {
	// Profile fetches the user record and refreshes the session's
	// identity cache.
	Profile(ctx context.Context) (User, error)

	// Update issues a partial update with only the fields that actually
	// changed relative to current. When nothing changed it reports
	// changed=false without any network call.
	Update(ctx context.Context, current User, upd ProfileUpdate) (updated User, changed bool, err error)

	// UpdateAvatar replaces the profile picture with the image at path.
	UpdateAvatar(ctx context.Context, path string) error
}

type profileService struct {
	gw       api.Caller
	sessions *session.Store
	log      logging.Logger
}

func NewProfileService(gw api.Caller, sessions *session.Store, log logging.Logger) ProfileService {
	return &profileService{gw: gw, sessions: sessions, log: log.With("component", "profile")}
}

func (p *profileService) Profile(ctx context.Context) (User, error) {
	var u User
	if err := p.gw.Call(ctx, http.MethodGet, "/auth/profile/", nil, &u); err != nil {
		return User{}, forceSignOut(ctx, p.sessions, p.log, err)
	}

	err := p.sessions.UpdateIdentity(ctx, func(s *session.Session) {
		s.Email = u.Email
		s.Username = u.Username
	})
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return User{}, err
	}
	return u, nil
}

func (p *profileService) Update(ctx context.Context, current User, upd ProfileUpdate) (User, bool, error) {
	body := map[string]string{}
	if upd.Username != nil && *upd.Username != current.Username {
		body["username"] = *upd.Username
	}
	if upd.FirstName != nil && *upd.FirstName != current.FirstName {
		body["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil && *upd.LastName != current.LastName {
		body["last_name"] = *upd.LastName
	}

	// submitting unchanged values is a no-op, not a request
	if len(body) == 0 {
		return current, false, nil
	}

	var echoed User
	if err := p.gw.Call(ctx, http.MethodPatch, "/auth/profile/update/", body, &echoed); err != nil {
		return User{}, false, forceSignOut(ctx, p.sessions, p.log, err)
	}

	// the server echoes the fields it changed; fall back to what we sent
	merged := current
	if v, ok := body["username"]; ok {
		merged.Username = v
	}
	if v, ok := body["first_name"]; ok {
		merged.FirstName = v
	}
	if v, ok := body["last_name"]; ok {
		merged.LastName = v
	}
	if echoed.Username != "" {
		merged.Username = echoed.Username
	}
	if echoed.FirstName != "" {
		merged.FirstName = echoed.FirstName
	}
	if echoed.LastName != "" {
		merged.LastName = echoed.LastName
	}

	err := p.sessions.UpdateIdentity(ctx, func(s *session.Session) {
		s.Username = merged.Username
	})
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return User{}, false, err
	}

	p.log.Info(ctx, "profile updated", "fields", len(body))
	return merged, true, nil
}

func (p *profileService) UpdateAvatar(ctx context.Context, path string) error {
	err := p.gw.CallMultipart(ctx, http.MethodPatch, "/auth/profile/update/", nil, "image", path, nil)
	if err != nil {
		return forceSignOut(ctx, p.sessions, p.log, err)
	}
	p.log.Info(ctx, "avatar updated")
	return nil
}
