package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"housing_signals/internal/domain"
)

type CheckpointStore struct {
	db *sqlx.DB
}

func NewCheckpointStore(db *sqlx.DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

// Get returns the checkpoint for one source-key. A key never fetched before
// yields a zero-valued checkpoint (LastFetchedAt zero), not an error; the
// caller falls back to its default lookback window.
func (s *CheckpointStore) Get(ctx context.Context, sourceID, sourceKey string) (*domain.Checkpoint, error) {
	query := `
		SELECT id, source_id, source_key, last_fetched_at, total_synced, updated_at
		FROM fetch_checkpoints
		WHERE source_id = $1 AND source_key = $2`

	var cp domain.Checkpoint
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cp, query, sourceID, sourceKey)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Checkpoint{SourceID: sourceID, SourceKey: sourceKey}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// Update upserts the checkpoint, overwriting any prior value for the key.
func (s *CheckpointStore) Update(ctx context.Context, cp *domain.Checkpoint) error {
	query := `
		INSERT INTO fetch_checkpoints (source_id, source_key, last_fetched_at, total_synced, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (source_id, source_key) DO UPDATE SET
			last_fetched_at = EXCLUDED.last_fetched_at,
			total_synced = EXCLUDED.total_synced,
			updated_at = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		cp.SourceID,
		cp.SourceKey,
		cp.LastFetchedAt,
		cp.TotalSynced,
	)
	return err
}
