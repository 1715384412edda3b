package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Faizan-Cheema/popstream/internal/dbx"
)

// Stable key names for persisted session fields.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyEmail        = "email"
	keyUsername     = "username"
)

// SQLiteBackend is the durable tier: session fields stored as key/value rows
// in a local SQLite file, shared across processes.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (b *SQLiteBackend) Save(ctx context.Context, s Session) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		fields := map[string]string{
			keyAccessToken:  s.AccessToken,
			keyRefreshToken: s.RefreshToken,
			keyEmail:        s.Email,
			keyUsername:     s.Username,
		}
		for key, value := range fields {
			if err := set(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Load(ctx context.Context) (Session, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		fields[key] = value
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if fields[keyAccessToken] == "" {
		return Session{}, ErrNoSession
	}

	return Session{
		AccessToken:  fields[keyAccessToken],
		RefreshToken: fields[keyRefreshToken],
		Email:        fields[keyEmail],
		Username:     fields[keyUsername],
		Tier:         TierDurable,
	}, nil
}

func (b *SQLiteBackend) Clear(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
