package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"housing_signals/internal/config"
	"housing_signals/internal/domain"
	"housing_signals/internal/normalize"
)

// RedditSyncService runs the fetch -> extract -> normalize -> upload cycle
// for the configured subreddits. Keys are synced sequentially and isolated:
// one key's failure aborts that key only.
type RedditSyncService struct {
	source      RedditSource
	posts       PostStore
	checkpoints CheckpointStore
	txManager   TransactionManager
	rawStore    RawStore
	normalizer  *normalize.Reddit
	publisher   Publisher
	logger      *slog.Logger
	cfg         config.RedditConfig
	now         func() time.Time
}

func NewRedditSyncService(
	source RedditSource,
	posts PostStore,
	checkpoints CheckpointStore,
	txManager TransactionManager,
	rawStore RawStore,
	normalizer *normalize.Reddit,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.RedditConfig,
) *RedditSyncService {
	return &RedditSyncService{
		source:      source,
		posts:       posts,
		checkpoints: checkpoints,
		txManager:   txManager,
		rawStore:    rawStore,
		normalizer:  normalizer,
		publisher:   publisher,
		logger:      logger.With("source", source.ID()),
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *RedditSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.RunStats, error) {
	startTime := s.now()

	keys, err := s.resolveKeys(opts.Keys)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting sync",
		"mode", opts.Mode.String(),
		"keys", keys,
	)

	stats := &domain.RunStats{SourceID: s.source.ID()}
	for _, key := range keys {
		ks := s.syncKey(ctx, key, opts)
		if ks.Err != nil {
			s.logger.Error("source key aborted", "key", key, "error", ks.Err)
		}
		stats.Keys = append(stats.Keys, ks)
	}
	stats.Duration = time.Since(startTime)

	t := stats.Totals()
	s.logger.Info("sync completed",
		"pages", t.Pages,
		"fetched", t.Fetched,
		"normalized", t.Normalized,
		"location_hits", t.LocationHits,
		"price_hits", t.PriceHits,
		"city_hits", t.CityHits,
		"inserted", t.Inserted,
		"duplicates", t.Duplicates,
		"published", t.Published,
		"aborted_keys", len(stats.Failed()),
		"duration", stats.Duration,
	)

	if failed := stats.Failed(); len(failed) > 0 {
		return stats, fmt.Errorf("%d of %d source keys aborted", len(failed), len(keys))
	}
	return stats, nil
}

func (s *RedditSyncService) resolveKeys(requested []string) ([]string, error) {
	configured := make(map[string]struct{}, len(s.cfg.Subreddits))
	var all []string
	for _, sub := range s.cfg.Subreddits {
		configured[sub.Key] = struct{}{}
		all = append(all, sub.Key)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no subreddits configured")
	}
	if len(requested) == 0 {
		return all, nil
	}
	for _, key := range requested {
		if _, ok := configured[key]; !ok {
			return nil, fmt.Errorf("unknown subreddit %q", key)
		}
	}
	return requested, nil
}

func (s *RedditSyncService) syncKey(ctx context.Context, key string, opts RunOptions) domain.KeyStats {
	ks := domain.KeyStats{SourceKey: key}
	logger := s.logger.With("key", key)

	look := lookbacks{
		incremental: s.cfg.LookbackDays,
		full:        s.cfg.FullLookbackDays,
		test:        s.cfg.TestLookbackDays,
	}
	win, err := resolveWindow(ctx, s.checkpoints, s.source.ID(), key, opts, look, s.now())
	if err != nil {
		ks.Err = err
		return ks
	}

	logger.Info("fetching",
		"since", win.since,
		"until", win.until,
	)

	batch, err := s.rawStore.NewBatch(key, win.since, win.until)
	if err != nil {
		ks.Err = fmt.Errorf("open raw batch: %w", err)
		return ks
	}

	raw, err := s.source.Fetch(ctx, key, win.since, win.until, batch)
	ks.Pages = batch.Pages()
	if closeErr := batch.Close(); closeErr != nil {
		logger.Warn("close raw batch", "error", closeErr)
	}
	if err != nil {
		// Pages already written to the raw store survive; the checkpoint
		// stays put so the next run re-fetches the window.
		ks.Err = fmt.Errorf("fetch: %w", err)
		return ks
	}
	ks.Fetched = len(raw)

	if len(raw) == 0 {
		logger.Info("no new posts")
		return ks
	}

	rows := s.normalizer.Normalize(key, raw)
	ks.Normalized = len(rows)
	for _, r := range rows {
		if r.Location != nil {
			ks.LocationHits++
		}
		if r.PurchasePrice != nil {
			ks.PriceHits++
		}
		if r.CityMentions != nil {
			ks.CityHits++
		}
	}

	var inserted []domain.Post
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		ids := make([]string, len(rows))
		for i, r := range rows {
			ids[i] = r.PostID
		}
		existing, err := s.posts.ExistingIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("existing ids: %w", err)
		}

		fresh := make([]domain.Post, 0, len(rows))
		for _, r := range rows {
			if _, dup := existing[r.PostID]; dup {
				continue
			}
			fresh = append(fresh, r)
		}

		n, err := s.posts.InsertBatch(txCtx, fresh)
		if err != nil {
			return fmt.Errorf("insert posts: %w", err)
		}
		ks.Inserted = n
		ks.Duplicates = len(rows) - len(fresh)
		inserted = fresh
		return nil
	})
	if err != nil {
		ks.Err = fmt.Errorf("upload: %w", err)
		return ks
	}

	if s.publisher != nil {
		for i := range inserted {
			if err := s.publisher.PublishRow(ctx, s.source.ID(), key, &inserted[i]); err != nil {
				logger.Warn("publish row", "post_id", inserted[i].PostID, "error", err)
			} else {
				ks.Published++
			}
		}
	}

	if opts.Mode != ModeTest {
		if err := s.advanceCheckpoint(ctx, key, raw, ks.Inserted); err != nil {
			ks.Err = fmt.Errorf("update checkpoint: %w", err)
			return ks
		}
	}

	logger.Info("key synced",
		"fetched", ks.Fetched,
		"inserted", ks.Inserted,
		"duplicates", ks.Duplicates,
	)
	return ks
}

// advanceCheckpoint moves the key's high-water mark to the newest fetched
// item. Called only after the upload succeeded.
func (s *RedditSyncService) advanceCheckpoint(ctx context.Context, key string, raw []domain.RawPost, inserted int) error {
	var latest int64
	for _, p := range raw {
		if p.CreatedUTC > latest {
			latest = p.CreatedUTC
		}
	}
	if latest == 0 {
		return nil
	}

	cp, err := s.checkpoints.Get(ctx, s.source.ID(), key)
	if err != nil {
		return err
	}
	cp.LastFetchedAt = time.Unix(latest, 0).UTC()
	cp.TotalSynced += int64(inserted)
	return s.checkpoints.Update(ctx, cp)
}
