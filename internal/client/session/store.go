package session

import (
	"context"
	"errors"
	"fmt"
)

// Store is the single source of truth for the client's session. It owns one
// backend per tier and guarantees that at most one tier holds a session at
// any time.
type Store struct {
	durable   Backend
	ephemeral Backend
}

func NewStore(durable, ephemeral Backend) *Store {
	return &Store{durable: durable, ephemeral: ephemeral}
}

// Save clears both tiers and then writes the session into the tier recorded
// on it. A session without a tier defaults to durable.
func (st *Store) Save(ctx context.Context, s Session) error {
	if s.Tier == "" {
		s.Tier = TierDurable
	}

	if err := st.Clear(ctx); err != nil {
		return err
	}

	switch s.Tier {
	case TierDurable:
		return st.durable.Save(ctx, s)
	case TierEphemeral:
		return st.ephemeral.Save(ctx, s)
	default:
		return fmt.Errorf("unknown persistence tier %q", s.Tier)
	}
}

// Load returns the current session, checking the durable tier first and the
// ephemeral tier second. The first hit wins; tiers are never merged.
// Returns ErrNoSession when both tiers are empty.
func (st *Store) Load(ctx context.Context) (Session, error) {
	s, err := st.durable.Load(ctx)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNoSession) {
		return Session{}, err
	}
	return st.ephemeral.Load(ctx)
}

// Clear removes the session from both tiers unconditionally. Clearing an
// already-empty store is a no-op, not an error.
func (st *Store) Clear(ctx context.Context) error {
	return errors.Join(st.durable.Clear(ctx), st.ephemeral.Clear(ctx))
}

// UpdateIdentity loads the current session, lets mutate adjust its cached
// identity fields, and writes it back into the same tier. Returns
// ErrNoSession when signed out.
func (st *Store) UpdateIdentity(ctx context.Context, mutate func(*Session)) error {
	s, err := st.Load(ctx)
	if err != nil {
		return err
	}
	mutate(&s)
	return st.Save(ctx, s)
}
