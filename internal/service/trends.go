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

// TrendsSyncService runs the fetch -> aggregate -> upload cycle for the
// configured search terms. Daily scores are rolled up into Sunday-starting
// weekly buckets before upload.
type TrendsSyncService struct {
	source      TrendsSource
	trends      TrendStore
	checkpoints CheckpointStore
	txManager   TransactionManager
	rawStore    RawStore
	publisher   Publisher
	logger      *slog.Logger
	cfg         config.TrendsConfig
	now         func() time.Time
}

func NewTrendsSyncService(
	source TrendsSource,
	trends TrendStore,
	checkpoints CheckpointStore,
	txManager TransactionManager,
	rawStore RawStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.TrendsConfig,
) *TrendsSyncService {
	return &TrendsSyncService{
		source:      source,
		trends:      trends,
		checkpoints: checkpoints,
		txManager:   txManager,
		rawStore:    rawStore,
		publisher:   publisher,
		logger:      logger.With("source", source.ID()),
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *TrendsSyncService) Sync(ctx context.Context, opts RunOptions) (*domain.RunStats, error) {
	startTime := s.now()

	terms, err := s.resolveTerms(opts.Keys)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(terms))
	for i, t := range terms {
		keys[i] = t.Key
	}
	s.logger.Info("starting sync",
		"mode", opts.Mode.String(),
		"keys", keys,
		"geo", s.source.Geo(),
	)

	stats := &domain.RunStats{SourceID: s.source.ID()}
	for _, term := range terms {
		ks := s.syncTerm(ctx, term, opts)
		if ks.Err != nil {
			s.logger.Error("source key aborted", "key", term.Key, "error", ks.Err)
		}
		stats.Keys = append(stats.Keys, ks)
	}
	stats.Duration = time.Since(startTime)

	t := stats.Totals()
	s.logger.Info("sync completed",
		"pages", t.Pages,
		"fetched", t.Fetched,
		"normalized", t.Normalized,
		"inserted", t.Inserted,
		"duplicates", t.Duplicates,
		"published", t.Published,
		"aborted_keys", len(stats.Failed()),
		"duration", stats.Duration,
	)

	if failed := stats.Failed(); len(failed) > 0 {
		return stats, fmt.Errorf("%d of %d source keys aborted", len(failed), len(terms))
	}
	return stats, nil
}

func (s *TrendsSyncService) resolveTerms(requested []string) ([]config.SearchTerm, error) {
	if len(s.cfg.Terms) == 0 {
		return nil, fmt.Errorf("no search terms configured")
	}
	if len(requested) == 0 {
		return s.cfg.Terms, nil
	}

	byKey := make(map[string]config.SearchTerm, len(s.cfg.Terms))
	for _, t := range s.cfg.Terms {
		byKey[t.Key] = t
	}

	terms := make([]config.SearchTerm, 0, len(requested))
	for _, key := range requested {
		t, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("unknown search term %q", key)
		}
		terms = append(terms, t)
	}
	return terms, nil
}

func (s *TrendsSyncService) syncTerm(ctx context.Context, term config.SearchTerm, opts RunOptions) domain.KeyStats {
	ks := domain.KeyStats{SourceKey: term.Key}
	logger := s.logger.With("key", term.Key)

	look := lookbacks{
		incremental: s.cfg.LookbackDays,
		full:        s.cfg.FullLookbackDays,
		test:        s.cfg.TestLookbackDays,
	}
	win, err := resolveWindow(ctx, s.checkpoints, s.source.ID(), term.Key, opts, look, s.now())
	if err != nil {
		ks.Err = err
		return ks
	}

	logger.Info("fetching",
		"term", term.Term,
		"since", win.since,
		"until", win.until,
	)

	batch, err := s.rawStore.NewBatch(term.Key, win.since, win.until)
	if err != nil {
		ks.Err = fmt.Errorf("open raw batch: %w", err)
		return ks
	}

	points, err := s.source.Fetch(ctx, term.Term, win.since, win.until, batch)
	ks.Pages = batch.Pages()
	if closeErr := batch.Close(); closeErr != nil {
		logger.Warn("close raw batch", "error", closeErr)
	}
	if err != nil {
		ks.Err = fmt.Errorf("fetch: %w", err)
		return ks
	}
	ks.Fetched = len(points)

	if len(points) == 0 {
		logger.Info("no new data")
		return ks
	}

	rows := normalize.AggregateWeekly(points, s.rowTerm(term), term.Category, s.source.Geo())
	rows = normalize.DedupWeekly(rows)
	ks.Normalized = len(rows)

	var inserted []domain.WeeklyInterest
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.trends.ExistingKeys(txCtx, rows)
		if err != nil {
			return fmt.Errorf("existing keys: %w", err)
		}

		fresh := make([]domain.WeeklyInterest, 0, len(rows))
		for _, r := range rows {
			if _, dup := existing[r.Key()]; dup {
				continue
			}
			fresh = append(fresh, r)
		}

		n, err := s.trends.InsertBatch(txCtx, fresh)
		if err != nil {
			return fmt.Errorf("insert weekly rows: %w", err)
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
			if err := s.publisher.PublishRow(ctx, s.source.ID(), term.Key, &inserted[i]); err != nil {
				logger.Warn("publish row", "week", inserted[i].WeekStartDate, "error", err)
			} else {
				ks.Published++
			}
		}
	}

	if opts.Mode != ModeTest {
		if err := s.advanceCheckpoint(ctx, term.Key, points, ks.Inserted); err != nil {
			ks.Err = fmt.Errorf("update checkpoint: %w", err)
			return ks
		}
	}

	logger.Info("key synced",
		"fetched", ks.Fetched,
		"weekly_rows", ks.Normalized,
		"inserted", ks.Inserted,
		"duplicates", ks.Duplicates,
	)
	return ks
}

// rowTerm is the search_term value written to the warehouse: the display
// name when configured, otherwise the query term itself.
func (s *TrendsSyncService) rowTerm(term config.SearchTerm) string {
	if term.DisplayName != "" {
		return term.DisplayName
	}
	return term.Term
}

func (s *TrendsSyncService) advanceCheckpoint(ctx context.Context, key string, points []domain.InterestPoint, inserted int) error {
	var latest time.Time
	for _, p := range points {
		if p.Date.After(latest) {
			latest = p.Date
		}
	}
	if latest.IsZero() {
		return nil
	}

	cp, err := s.checkpoints.Get(ctx, s.source.ID(), key)
	if err != nil {
		return err
	}
	cp.LastFetchedAt = latest
	cp.TotalSynced += int64(inserted)
	return s.checkpoints.Update(ctx, cp)
}
