// Package session holds the client's authentication state: an access/refresh
// credential pair plus a small identity cache, persisted in exactly one of
// two tiers: durable (SQLite file, survives restarts) or ephemeral
// (in-memory, dies with the process).
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tier selects where a session is persisted. The tier is chosen once at
// sign-in ("remember me" picks durable) and recorded on the session, so
// reads never have to guess.
type Tier string

const (
	TierDurable   Tier = "durable"
	TierEphemeral Tier = "ephemeral"
)

// Session is the authentication state of the current client.
//
// AccessToken present means the user is considered authenticated.
// RefreshToken is used only to terminate the session server-side on
// sign-out; there is no silent renewal. Email and Username are a cache of
// user-visible identity, refreshable from the profile endpoint.
type Session struct {
	AccessToken  string
	RefreshToken string
	Email        string
	Username     string
	Tier         Tier
}

// ExpiresAt peeks at the access token's exp claim without verifying the
// signature. Best-effort and for display only; the token stays opaque to
// all control flow. Returns false when the token is not a JWT or carries
// no expiry.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.AccessToken == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
