package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestOpenDB_AppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popstream.db")

	db, err := OpenDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// the session table must exist after migrations
	_, err = db.Exec(`INSERT INTO session (key, value) VALUES ('access_token', 'A')`)
	require.NoError(t, err)

	b := NewSQLiteBackend(db)
	out, err := b.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A", out.AccessToken)
}

func TestOpenDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popstream.db")
	ctx := context.Background()

	db1, err := OpenDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	// reopening an already-migrated database must not fail
	db2, err := OpenDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })
}
