package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Warehouse DDL. Creation is idempotent and never destructive on existing
// data. The BigQuery partition/cluster layout maps to plain indexes here:
// the partition column gets a standalone index, the cluster columns a
// composite one.
const ddl = `
CREATE TABLE IF NOT EXISTS reddit_posts (
	post_id        TEXT PRIMARY KEY,
	subreddit      TEXT NOT NULL,
	created_utc    TIMESTAMPTZ NOT NULL,
	created_date   DATE NOT NULL,
	title          TEXT,
	selftext       TEXT,
	score          INTEGER,
	num_comments   INTEGER,
	author         TEXT,
	location       TEXT,
	purchase_price DOUBLE PRECISION,
	city_mentions  TEXT,
	permalink      TEXT,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_reddit_posts_created_date
	ON reddit_posts (created_date);
CREATE INDEX IF NOT EXISTS idx_reddit_posts_subreddit_location
	ON reddit_posts (subreddit, location);

CREATE TABLE IF NOT EXISTS trends_weekly (
	week_start_date    DATE NOT NULL,
	search_term        TEXT NOT NULL,
	category           TEXT NOT NULL,
	avg_interest_score INTEGER NOT NULL,
	region             TEXT NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (week_start_date, search_term, region)
);
CREATE INDEX IF NOT EXISTS idx_trends_weekly_category_term
	ON trends_weekly (category, search_term);

CREATE TABLE IF NOT EXISTS fetch_checkpoints (
	id              BIGSERIAL PRIMARY KEY,
	source_id       TEXT NOT NULL,
	source_key      TEXT NOT NULL,
	last_fetched_at TIMESTAMPTZ NOT NULL,
	total_synced    BIGINT NOT NULL DEFAULT 0,
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (source_id, source_key)
);`

// EnsureSchema creates the warehouse tables and indexes if absent.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, ddl)
	return err
}
