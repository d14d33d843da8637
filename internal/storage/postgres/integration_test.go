//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"housing_signals/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM reddit_posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM trends_weekly")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM fetch_checkpoints")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func testPost(id string, createdUTC time.Time) domain.Post {
	return domain.Post{
		PostID:      id,
		Subreddit:   "FirstTimeHomeBuyer",
		CreatedUTC:  createdUTC,
		CreatedDate: createdUTC.Truncate(24 * time.Hour),
		Title:       "Post " + id,
		Author:      "tester",
		Permalink:   "https://reddit.com/r/FirstTimeHomeBuyer/comments/" + id,
	}
}

func (s *PostgresIntegrationSuite) TestPostStore_InsertBatch() {
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	loc := "Austin, TX"
	price := 450000.0
	cities := "Austin|Denver"

	post := testPost("abc", now)
	post.Location = &loc
	post.PurchasePrice = &price
	post.CityMentions = &cities

	n, err := store.InsertBatch(s.ctx, []domain.Post{post})
	s.NoError(err)
	s.Equal(1, n)

	var got struct {
		Location      *string  `db:"location"`
		PurchasePrice *float64 `db:"purchase_price"`
		CityMentions  *string  `db:"city_mentions"`
	}
	err = s.db.GetContext(s.ctx, &got,
		"SELECT location, purchase_price, city_mentions FROM reddit_posts WHERE post_id = $1", "abc")
	s.NoError(err)
	s.Equal("Austin, TX", *got.Location)
	s.Equal(450000.0, *got.PurchasePrice)
	s.Equal("Austin|Denver", *got.CityMentions)
}

func (s *PostgresIntegrationSuite) TestPostStore_ReplayIsIdempotent() {
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := testPost("abc", now)
	n, err := store.InsertBatch(s.ctx, []domain.Post{first})
	s.NoError(err)
	s.Equal(1, n)

	// Same key with different content: first write wins.
	second := testPost("abc", now)
	second.Title = "Changed Title"
	n, err = store.InsertBatch(s.ctx, []domain.Post{second})
	s.NoError(err)
	s.Equal(0, n)

	var title string
	err = s.db.GetContext(s.ctx, &title, "SELECT title FROM reddit_posts WHERE post_id = $1", "abc")
	s.NoError(err)
	s.Equal("Post abc", title)
}

func (s *PostgresIntegrationSuite) TestPostStore_ExistingIDs() {
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := store.InsertBatch(s.ctx, []domain.Post{
		testPost("a", now),
		testPost("b", now),
	})
	s.NoError(err)

	existing, err := store.ExistingIDs(s.ctx, []string{"a", "b", "missing"})
	s.NoError(err)
	s.Len(existing, 2)
	s.Contains(existing, "a")
	s.Contains(existing, "b")
	s.NotContains(existing, "missing")
}

func (s *PostgresIntegrationSuite) TestPostStore_ExistingIDs_EmptyBatch() {
	store := NewPostStore(s.db)

	existing, err := store.ExistingIDs(s.ctx, nil)
	s.NoError(err)
	s.Empty(existing)
}

func (s *PostgresIntegrationSuite) TestTrendStore_InsertAndProbe() {
	store := NewTrendStore(s.db)
	week := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.WeeklyInterest{
		{WeekStartDate: week, SearchTerm: "home insurance", Category: "Financial Friction", AvgInterestScore: 40, Region: "US"},
		{WeekStartDate: week.AddDate(0, 0, 7), SearchTerm: "home insurance", Category: "Financial Friction", AvgInterestScore: 55, Region: "US"},
	}

	n, err := store.InsertBatch(s.ctx, rows)
	s.NoError(err)
	s.Equal(2, n)

	probe := append(rows, domain.WeeklyInterest{
		WeekStartDate: week.AddDate(0, 0, 14), SearchTerm: "home insurance", Region: "US",
	})
	existing, err := store.ExistingKeys(s.ctx, probe)
	s.NoError(err)
	s.Len(existing, 2)
	s.Contains(existing, rows[0].Key())
	s.Contains(existing, rows[1].Key())
}

func (s *PostgresIntegrationSuite) TestTrendStore_ReplayIsIdempotent() {
	store := NewTrendStore(s.db)
	week := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	row := domain.WeeklyInterest{
		WeekStartDate: week, SearchTerm: "foreclosure auction", Category: "Distress Signal", AvgInterestScore: 30, Region: "US",
	}

	n, err := store.InsertBatch(s.ctx, []domain.WeeklyInterest{row})
	s.NoError(err)
	s.Equal(1, n)

	row.AvgInterestScore = 99
	n, err = store.InsertBatch(s.ctx, []domain.WeeklyInterest{row})
	s.NoError(err)
	s.Equal(0, n)

	var score int
	err = s.db.GetContext(s.ctx, &score,
		"SELECT avg_interest_score FROM trends_weekly WHERE search_term = $1", "foreclosure auction")
	s.NoError(err)
	s.Equal(30, score)
}

func (s *PostgresIntegrationSuite) TestCheckpointStore_GetNew() {
	store := NewCheckpointStore(s.db)

	cp, err := store.Get(s.ctx, "reddit", "never-fetched")
	s.NoError(err)
	s.NotNil(cp)
	s.Equal("reddit", cp.SourceID)
	s.Equal("never-fetched", cp.SourceKey)
	s.True(cp.LastFetchedAt.IsZero())
	s.Equal(int64(0), cp.TotalSynced)
}

func (s *PostgresIntegrationSuite) TestCheckpointStore_UpdateAndGet() {
	store := NewCheckpointStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	cp := &domain.Checkpoint{
		SourceID:      "reddit",
		SourceKey:     "FirstTimeHomeBuyer",
		LastFetchedAt: now,
		TotalSynced:   42,
	}
	s.NoError(store.Update(s.ctx, cp))

	got, err := store.Get(s.ctx, "reddit", "FirstTimeHomeBuyer")
	s.NoError(err)
	s.Equal(int64(42), got.TotalSynced)
	s.WithinDuration(now, got.LastFetchedAt, time.Second)

	// Same key again overwrites.
	cp.LastFetchedAt = now.Add(time.Hour)
	cp.TotalSynced = 50
	s.NoError(store.Update(s.ctx, cp))

	got, err = store.Get(s.ctx, "reddit", "FirstTimeHomeBuyer")
	s.NoError(err)
	s.Equal(int64(50), got.TotalSynced)

	// Keys are independent per source.
	other, err := store.Get(s.ctx, "trends", "FirstTimeHomeBuyer")
	s.NoError(err)
	s.True(other.LastFetchedAt.IsZero())
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.InsertBatch(ctx, []domain.Post{testPost("tx1", now)})
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM reddit_posts WHERE post_id = $1", "tx1")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.InsertBatch(ctx, []domain.Post{testPost("tx2", now)}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM reddit_posts WHERE post_id = $1", "tx2")
	s.NoError(err)
	s.Equal(0, count)
}
