// Package postgres implements the local snapshot tier as a single keyed row
// in Postgres, for deployments that already run a database. The contract is
// the same whole-blob replace as the file store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"conftrack/internal/domain"
)

const snapshotKey = "conferences"

type snapshotRepository struct {
	DB *sql.DB
}

// NewSnapshotRepository returns a BlobStore backed by the snapshots table.
func NewSnapshotRepository(db *sql.DB) domain.BlobStore {
	return &snapshotRepository{
		DB: db,
	}
}

func (r *snapshotRepository) Read(ctx context.Context) ([]byte, error) {
	query := `
		SELECT payload
		FROM snapshots
		WHERE key = $1
	`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, snapshotKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}
	return payload, nil
}

func (r *snapshotRepository) Write(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, snapshotKey, data, time.Now()); err != nil {
		return fmt.Errorf("write snapshot row: %w", err)
	}
	return nil
}
