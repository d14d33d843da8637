package trends

import "encoding/json"

// apiResponse is the interest-over-time envelope returned by the trends
// proxy. Points are kept as raw JSON for the raw-store audit trail.
type apiResponse struct {
	Points []json.RawMessage `json:"points"`
}

// apiPoint is one daily interest sample.
type apiPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int    `json:"value"`
}
