package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// PostgresBackend keeps one row per key in the collections table.
type PostgresBackend struct {
	db *sqlx.DB
}

// NewPostgresBackend creates a PostgresBackend. The collections table is
// created by database.Migrate.
func NewPostgresBackend(db *sqlx.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// Read returns the payload stored for key.
func (b *PostgresBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT payload FROM collections WHERE name = $1`

	var payload string
	if err := b.db.GetContext(ctx, &payload, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

// Write upserts the payload for key.
func (b *PostgresBackend) Write(ctx context.Context, key string, value []byte) error {
	const q = `
        INSERT INTO collections (name, payload, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (name) DO UPDATE SET
            payload = EXCLUDED.payload,
            updated_at = NOW()`

	_, err := b.db.ExecContext(ctx, q, key, string(value))
	return err
}

// Ping checks the database connection.
func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}
