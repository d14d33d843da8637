package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  host: localhost
  port: 5432
  user: app
  password: secret
  dbname: housing_signals
  sslmode: disable
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Reddit.PageSize)
	assert.Equal(t, time.Second, cfg.Reddit.RateLimitDelay)
	assert.Equal(t, 30, cfg.Reddit.LookbackDays)
	assert.Equal(t, 365, cfg.Reddit.FullLookbackDays)
	assert.Equal(t, 7, cfg.Reddit.TestLookbackDays)
	assert.Equal(t, 3, cfg.Reddit.Retry.MaxAttempts)

	assert.Equal(t, "US", cfg.Trends.Geo)
	assert.Equal(t, 2*time.Second, cfg.Trends.RateLimitDelay)
	assert.Equal(t, 90, cfg.Trends.LookbackDays)
	assert.Equal(t, 365*5, cfg.Trends.FullLookbackDays)

	assert.Equal(t, float64(10_000), cfg.Extract.MinPrice)
	assert.Equal(t, float64(50_000_000), cfg.Extract.MaxPrice)

	assert.Equal(t, "raw", cfg.RawDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	cfg, err := Load(writeConfig(t, `
database:
  host: localhost
  user: app
  password: ${TEST_DB_PASSWORD}
  dbname: housing_signals
`))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_ParsesSources(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
reddit:
  subreddits:
    - key: FirstTimeHomeBuyer
      display_name: FirstTimeHomeBuyer
trends:
  base_url: http://localhost:8080/trends
  terms:
    - key: estate_sale
      term: /m/02rmp0
      display_name: estate sale
      category: Involuntary Supply
      is_topic: true
`))
	require.NoError(t, err)

	require.Len(t, cfg.Reddit.Subreddits, 1)
	assert.Equal(t, "FirstTimeHomeBuyer", cfg.Reddit.Subreddits[0].Key)

	require.Len(t, cfg.Trends.Terms, 1)
	term := cfg.Trends.Terms[0]
	assert.Equal(t, "estate_sale", term.Key)
	assert.Equal(t, "/m/02rmp0", term.Term)
	assert.Equal(t, "estate sale", term.DisplayName)
	assert.Equal(t, "Involuntary Supply", term.Category)
	assert.True(t, term.IsTopic)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing host",
			content: "database:\n  user: app\n  dbname: db\n",
			wantErr: "database.host",
		},
		{
			name:    "missing dbname",
			content: "database:\n  host: localhost\n  user: app\n",
			wantErr: "database.dbname",
		},
		{
			name:    "missing user",
			content: "database:\n  host: localhost\n  dbname: db\n",
			wantErr: "database.user",
		},
		{
			name:    "term without key",
			content: minimalConfig + "trends:\n  base_url: http://localhost:8080/trends\n  terms:\n    - term: foreclosure\n",
			wantErr: "trends term",
		},
		{
			name:    "terms without base url",
			content: minimalConfig + "trends:\n  terms:\n    - key: foreclosure_auction\n      term: /m/02tp2m\n",
			wantErr: "trends.base_url",
		},
		{
			name:    "subreddit without key",
			content: minimalConfig + "reddit:\n  subreddits:\n    - display_name: Foo\n",
			wantErr: "subreddit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "app", Password: "pw", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=app password=pw dbname=db sslmode=disable", d.DSN())
}
