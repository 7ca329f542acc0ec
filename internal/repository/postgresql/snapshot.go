package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hrdash/hrdash-gateway-go/internal/pkg/database"
)

// snapshotRepositoryImpl caches normalized upstream payloads as JSONB rows
// keyed by (kind, scope_key), e.g. ("holidays", "default/2024"). Near-static
// data like holiday calendars is served from here between refreshes instead
// of hitting the upstream API on every grid build.
type snapshotRepositoryImpl struct {
	db *database.DB
}

// SnapshotRepository stores and retrieves cached upstream payloads.
type SnapshotRepository interface {
	// Get returns the payload for (kind, key) if one exists no older than
	// maxAge. A zero maxAge disables the age check.
	Get(ctx context.Context, kind, key string, maxAge time.Duration) ([]byte, bool, error)

	// Put upserts the payload for (kind, key), stamping it with now.
	Put(ctx context.Context, kind, key string, payload []byte) error
}

func NewSnapshotRepository(db *database.DB) SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

func (r *snapshotRepositoryImpl) Get(ctx context.Context, kind, key string, maxAge time.Duration) ([]byte, bool, error) {
	query := `
		SELECT payload, fetched_at
		FROM upstream_snapshots
		WHERE kind = $1 AND scope_key = $2
	`

	var payload []byte
	var fetchedAt time.Time
	err := r.db.QueryRow(ctx, query, kind, key).Scan(&payload, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get snapshot %s/%s: %w", kind, key, err)
	}

	if maxAge > 0 && time.Since(fetchedAt) > maxAge {
		return nil, false, nil
	}
	return payload, true, nil
}

func (r *snapshotRepositoryImpl) Put(ctx context.Context, kind, key string, payload []byte) error {
	query := `
		INSERT INTO upstream_snapshots (id, kind, scope_key, payload, fetched_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (kind, scope_key)
		DO UPDATE SET payload = EXCLUDED.payload, fetched_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, uuid.NewString(), kind, key, payload)
	if err != nil {
		return fmt.Errorf("failed to put snapshot %s/%s: %w", kind, key, err)
	}
	return nil
}
