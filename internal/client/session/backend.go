package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned by Load when a backend holds no session.
// Callers should match it with errors.Is.
var ErrNoSession = errors.New("no session")

// Backend persists a single session. Implementations must overwrite any
// prior session on Save and treat Clear of an empty store as a no-op.
type Backend interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}
