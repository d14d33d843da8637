package pullpush

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing_signals/internal/source"
)

type recordingSink struct {
	pages [][]json.RawMessage
}

func (r *recordingSink) WritePage(items []json.RawMessage) error {
	r.pages = append(r.pages, items)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(baseURL string, pageSize int) *Source {
	return New(Config{
		BaseURL:  baseURL,
		PageSize: pageSize,
		Timeout:  5 * time.Second,
		Retry: source.RetryPolicy{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     time.Millisecond,
		},
	}, testLogger())
}

func postJSON(id string, createdUTC int64) string {
	return fmt.Sprintf(`{"id":%q,"title":"post %s","created_utc":%d}`, id, id, createdUTC)
}

func TestFetch_PaginatesByCreatedUTC(t *testing.T) {
	since := time.Unix(1000, 0)
	until := time.Unix(2000, 0)

	var afters []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		afters = append(afters, q.Get("after"))
		assert.Equal(t, "2000", q.Get("before"))
		assert.Equal(t, "2", q.Get("size"))
		assert.Equal(t, "asc", q.Get("sort"))
		assert.Equal(t, "created_utc", q.Get("sort_type"))
		assert.Equal(t, "homebuying", q.Get("subreddit"))

		var body string
		switch len(afters) {
		case 1:
			body = `{"data":[` + postJSON("a", 1100) + `,` + postJSON("b", 1200) + `]}`
		default:
			body = `{"data":[` + postJSON("c", 1300) + `]}`
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	sink := &recordingSink{}
	posts, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", since, until, sink)

	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "a", posts[0].ID)
	assert.Equal(t, "c", posts[2].ID)

	// Second page resumes one second past the newest item of the first.
	assert.Equal(t, []string{"1000", "1201"}, afters)

	// Verbatim payloads reach the sink page by page.
	require.Len(t, sink.pages, 2)
	assert.Len(t, sink.pages[0], 2)
	assert.JSONEq(t, postJSON("a", 1100), string(sink.pages[0][0]))
}

func TestFetch_StopsOnEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	sink := &recordingSink{}
	posts, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", time.Unix(1000, 0), time.Unix(2000, 0), sink)

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Empty(t, sink.pages)
}

func TestFetch_RetriesThrottling(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data":[` + postJSON("a", 1500) + `]}`))
	}))
	defer server.Close()

	posts, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", time.Unix(1000, 0), time.Unix(2000, 0), nil)

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 2, calls)
}

func TestFetch_BadRequestNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", time.Unix(1000, 0), time.Unix(2000, 0), nil)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetch_RetryExhaustion(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", time.Unix(1000, 0), time.Unix(2000, 0), nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestFetch_MalformedItemIsPermanent(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"data":[{"id":42}]}`))
	}))
	defer server.Close()

	sink := &recordingSink{}
	_, err := newTestSource(server.URL, 2).Fetch(context.Background(), "homebuying", time.Unix(1000, 0), time.Unix(2000, 0), sink)

	require.Error(t, err)
	assert.ErrorContains(t, err, "decode submission")
	assert.Equal(t, 1, calls)

	// The malformed page is still sunk, so the raw file shows what came back.
	require.Len(t, sink.pages, 1)
	assert.JSONEq(t, `{"id":42}`, string(sink.pages[0][0]))
}
