package domain

import "time"

// KeyStats holds statistics for one source-key within a run.
type KeyStats struct {
	SourceKey  string
	Pages      int
	Fetched    int
	Normalized int
	// Extraction hit counts (Reddit only). Misses are expected, not errors.
	LocationHits int
	PriceHits    int
	CityHits     int
	Inserted     int
	Duplicates   int
	Published    int
	Err          error
}

// Aborted reports whether this key's sync failed.
func (k KeyStats) Aborted() bool {
	return k.Err != nil
}

// RunStats is the per-run summary surfaced to the operator.
type RunStats struct {
	SourceID string
	Keys     []KeyStats
	Duration time.Duration
}

// Failed returns the keys whose sync aborted.
func (r *RunStats) Failed() []KeyStats {
	var failed []KeyStats
	for _, k := range r.Keys {
		if k.Aborted() {
			failed = append(failed, k)
		}
	}
	return failed
}

// Totals sums the per-key counters across the run.
func (r *RunStats) Totals() KeyStats {
	var t KeyStats
	for _, k := range r.Keys {
		t.Pages += k.Pages
		t.Fetched += k.Fetched
		t.Normalized += k.Normalized
		t.LocationHits += k.LocationHits
		t.PriceHits += k.PriceHits
		t.CityHits += k.CityHits
		t.Inserted += k.Inserted
		t.Duplicates += k.Duplicates
		t.Published += k.Published
	}
	return t
}
