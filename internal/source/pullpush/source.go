// Package pullpush fetches Reddit submissions from the PullPush.io search
// API, paging forward by created_utc with a fixed inter-request delay.
package pullpush

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"housing_signals/internal/domain"
	"housing_signals/internal/source"
)

const SourceID = "reddit"

type Config struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	RateLimitDelay time.Duration
	Retry          source.RetryPolicy
}

type Source struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	delay      time.Duration
	retry      source.RetryPolicy
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		delay:      cfg.RateLimitDelay,
		retry:      cfg.Retry,
		logger:     logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

// Fetch pages through all submissions in (since, until], oldest first. The
// cursor is the last item's created_utc + 1, so pages never overlap.
// Re-calling with the same arguments restarts the same finite sequence.
func (s *Source) Fetch(ctx context.Context, subreddit string, since, until time.Time, sink source.RawSink) ([]domain.RawPost, error) {
	pacer := source.NewPacer(s.delay)

	var all []domain.RawPost
	cursor := since.Unix()
	before := until.Unix()

	for page := 0; cursor < before; page++ {
		if err := pacer.Wait(ctx); err != nil {
			return all, err
		}

		raw, err := s.fetchPage(ctx, subreddit, cursor, before)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if len(raw) == 0 {
			break
		}

		// Sink the page verbatim before decoding, so malformed items are
		// still captured in the audit trail.
		if sink != nil {
			if err := sink.WritePage(raw); err != nil {
				return all, fmt.Errorf("write raw page %d: %w", page, err)
			}
		}

		posts, err := decodePage(raw)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}
		all = append(all, posts...)

		s.logger.Debug("fetched page",
			"subreddit", subreddit,
			"page", page,
			"posts", len(posts),
			"total", len(all),
		)

		last := cursor
		for _, p := range posts {
			if p.CreatedUTC > last {
				last = p.CreatedUTC
			}
		}
		cursor = last + 1

		if len(posts) < s.pageSize {
			break
		}
	}

	return all, nil
}

func (s *Source) fetchPage(ctx context.Context, subreddit string, after, before int64) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("subreddit", subreddit)
	params.Set("after", strconv.FormatInt(after, 10))
	params.Set("before", strconv.FormatInt(before, 10))
	params.Set("size", strconv.Itoa(s.pageSize))
	params.Set("sort", "asc")
	params.Set("sort_type", "created_utc")
	reqURL := s.baseURL + "?" + params.Encode()

	var resp *apiResponse
	err := s.retry.Do(ctx, s.logger, "pullpush page", func() error {
		var reqErr error
		resp, reqErr = s.doRequest(ctx, reqURL)
		return reqErr
	})
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func decodePage(items []json.RawMessage) ([]domain.RawPost, error) {
	posts := make([]domain.RawPost, 0, len(items))
	for _, item := range items {
		var p domain.RawPost
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, source.Permanent(fmt.Errorf("decode submission: %w", err))
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *Source) doRequest(ctx context.Context, reqURL string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, source.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "HousingSignals/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &source.StatusError{StatusCode: resp.StatusCode}
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, source.Permanent(fmt.Errorf("decode response: %w", err))
	}

	return &apiResp, nil
}
