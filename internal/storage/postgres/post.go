package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"housing_signals/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// ExistingIDs returns which of the given post IDs are already present in
// the warehouse. Only the incoming batch's keys are probed.
func (s *PostStore) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(ids) == 0 {
		return existing, nil
	}

	query := `SELECT post_id FROM reddit_posts WHERE post_id = ANY($1)`

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = struct{}{}
	}

	return existing, rows.Err()
}

// InsertBatch appends rows, stamping updated_at at insert time. Rows whose
// post_id already exists are left untouched (first write wins), so replaying
// a batch cannot corrupt the table. Returns the number of rows inserted.
func (s *PostStore) InsertBatch(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO reddit_posts (
			post_id, subreddit, created_utc, created_date, title, selftext,
			score, num_comments, author, location, purchase_price,
			city_mentions, permalink, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now()
		)
		ON CONFLICT (post_id) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	inserted := 0

	for _, p := range posts {
		res, err := exec.ExecContext(ctx, query,
			p.PostID,
			p.Subreddit,
			p.CreatedUTC,
			p.CreatedDate,
			p.Title,
			p.Selftext,
			p.Score,
			p.NumComments,
			p.Author,
			p.Location,
			p.PurchasePrice,
			p.CityMentions,
			p.Permalink,
		)
		if err != nil {
			return inserted, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(n)
	}

	return inserted, nil
}
