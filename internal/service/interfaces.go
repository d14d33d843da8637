package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"housing_signals/internal/domain"
	"housing_signals/internal/rawstore"
	"housing_signals/internal/source"
)

type RedditSource interface {
	ID() string
	Fetch(ctx context.Context, subreddit string, since, until time.Time, sink source.RawSink) ([]domain.RawPost, error)
}

type TrendsSource interface {
	ID() string
	Geo() string
	Fetch(ctx context.Context, term string, since, until time.Time, sink source.RawSink) ([]domain.InterestPoint, error)
}

type PostStore interface {
	ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error)
	InsertBatch(ctx context.Context, posts []domain.Post) (int, error)
}

type TrendStore interface {
	ExistingKeys(ctx context.Context, rows []domain.WeeklyInterest) (map[domain.WeeklyKey]struct{}, error)
	InsertBatch(ctx context.Context, rows []domain.WeeklyInterest) (int, error)
}

type CheckpointStore interface {
	Get(ctx context.Context, sourceID, sourceKey string) (*domain.Checkpoint, error)
	Update(ctx context.Context, cp *domain.Checkpoint) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishRow(ctx context.Context, sourceID, sourceKey string, row interface{}) error
	Close() error
}

// RawStore opens raw batches for fetch runs.
type RawStore interface {
	NewBatch(sourceKey string, since, until time.Time) (source.RawBatch, error)
}

type rawStoreAdapter struct {
	store *rawstore.Store
}

func (a rawStoreAdapter) NewBatch(sourceKey string, since, until time.Time) (source.RawBatch, error) {
	return a.store.NewBatch(sourceKey, since, until)
}

// WrapRawStore adapts the concrete raw store to the RawStore interface.
func WrapRawStore(s *rawstore.Store) RawStore {
	return rawStoreAdapter{store: s}
}
