// Package trends fetches daily search-interest scores from a Google-Trends
// interest-over-time endpoint. Both plain search terms and topic IDs
// ("/m/...") are passed through to the provider unchanged.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"housing_signals/internal/domain"
	"housing_signals/internal/source"
)

const SourceID = "trends"

const dateLayout = "2006-01-02"

type Config struct {
	BaseURL        string
	Geo            string
	Timeout        time.Duration
	RateLimitDelay time.Duration
	Retry          source.RetryPolicy
}

type Source struct {
	httpClient *http.Client
	baseURL    string
	geo        string
	delay      time.Duration
	retry      source.RetryPolicy
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		geo:        cfg.Geo,
		delay:      cfg.RateLimitDelay,
		retry:      cfg.Retry,
		logger:     logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Geo() string {
	return s.geo
}

// Fetch retrieves daily interest points for term in [since, until]. The
// provider may truncate long windows, so the request is re-issued with the
// day after the last returned point as the new start until the window is
// exhausted or a request comes back empty.
func (s *Source) Fetch(ctx context.Context, term string, since, until time.Time, sink source.RawSink) ([]domain.InterestPoint, error) {
	pacer := source.NewPacer(s.delay)

	var all []domain.InterestPoint
	cursor := since

	for page := 0; !cursor.After(until); page++ {
		if err := pacer.Wait(ctx); err != nil {
			return all, err
		}

		raw, err := s.fetchWindow(ctx, term, cursor, until)
		if err != nil {
			return all, fmt.Errorf("fetch window from %s: %w", cursor.Format(dateLayout), err)
		}
		if len(raw) == 0 {
			break
		}

		// Sink the window verbatim before decoding, so malformed points are
		// still captured in the audit trail.
		if sink != nil {
			if err := sink.WritePage(raw); err != nil {
				return all, fmt.Errorf("write raw page %d: %w", page, err)
			}
		}

		points, err := decodeWindow(term, raw)
		if err != nil {
			return all, fmt.Errorf("fetch window from %s: %w", cursor.Format(dateLayout), err)
		}
		all = append(all, points...)

		s.logger.Debug("fetched window",
			"term", term,
			"from", cursor.Format(dateLayout),
			"points", len(points),
			"total", len(all),
		)

		last := points[0].Date
		for _, p := range points {
			if p.Date.After(last) {
				last = p.Date
			}
		}
		next := last.AddDate(0, 0, 1)
		if !next.After(cursor) {
			break
		}
		cursor = next
	}

	return all, nil
}

func (s *Source) fetchWindow(ctx context.Context, term string, start, end time.Time) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("term", term)
	params.Set("geo", s.geo)
	params.Set("start", start.Format(dateLayout))
	params.Set("end", end.Format(dateLayout))
	reqURL := s.baseURL + "?" + params.Encode()

	var resp *apiResponse
	err := s.retry.Do(ctx, s.logger, "trends window", func() error {
		var reqErr error
		resp, reqErr = s.doRequest(ctx, reqURL)
		return reqErr
	})
	if err != nil {
		return nil, err
	}

	return resp.Points, nil
}

func decodeWindow(term string, items []json.RawMessage) ([]domain.InterestPoint, error) {
	points := make([]domain.InterestPoint, 0, len(items))
	for _, item := range items {
		var p apiPoint
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, source.Permanent(fmt.Errorf("decode point: %w", err))
		}
		date, err := time.ParseInLocation(dateLayout, p.Date, time.UTC)
		if err != nil {
			return nil, source.Permanent(fmt.Errorf("parse point date %q: %w", p.Date, err))
		}
		points = append(points, domain.InterestPoint{
			Term:  term,
			Date:  date,
			Score: p.Value,
		})
	}
	return points, nil
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
