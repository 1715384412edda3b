package session

import (
	"context"
	"sync"
)

// MemoryBackend is the ephemeral tier: session state kept in process memory.
// Safe for concurrent use.
type MemoryBackend struct {
	mu   sync.Mutex
	sess *Session
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Save(ctx context.Context, s Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s.Tier = TierEphemeral
	b.sess = &s
	return nil
}

func (b *MemoryBackend) Load(ctx context.Context) (Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sess == nil || b.sess.AccessToken == "" {
		return Session{}, ErrNoSession
	}
	return *b.sess, nil
}

func (b *MemoryBackend) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sess = nil
	return nil
}
