package domain

import "time"

// Checkpoint is the persisted high-water mark for one independently tracked
// source-key (a subreddit or a search term). A zero LastFetchedAt means no
// prior fetch exists and the caller falls back to its default lookback window.
type Checkpoint struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	SourceKey     string    `db:"source_key"`
	LastFetchedAt time.Time `db:"last_fetched_at"`
	TotalSynced   int64     `db:"total_synced"`
	UpdatedAt     time.Time `db:"updated_at"`
}
