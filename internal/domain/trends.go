package domain

import "time"

// InterestPoint is a raw daily search-interest score (0-100, provider-relative
// per term) as returned by the trends API.
type InterestPoint struct {
	Term  string    `json:"term"`
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// WeeklyInterest is a normalized trends row matching the warehouse schema.
// Natural key: (WeekStartDate, SearchTerm, Region).
type WeeklyInterest struct {
	WeekStartDate    time.Time `db:"week_start_date"`
	SearchTerm       string    `db:"search_term"`
	Category         string    `db:"category"`
	AvgInterestScore int       `db:"avg_interest_score"`
	Region           string    `db:"region"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// WeeklyKey is the natural key used to detect duplicate trends rows at
// upload time.
type WeeklyKey struct {
	WeekStartDate time.Time
	SearchTerm    string
	Region        string
}

// Key returns the row's natural key.
func (w WeeklyInterest) Key() WeeklyKey {
	return WeeklyKey{
		WeekStartDate: w.WeekStartDate,
		SearchTerm:    w.SearchTerm,
		Region:        w.Region,
	}
}
