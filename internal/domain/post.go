package domain

import "time"

// RawPost is a verbatim PullPush submission as returned by the API,
// kept unmodified for the raw-store audit trail.
type RawPost struct {
	ID          string `json:"id"`
	Subreddit   string `json:"subreddit"`
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	Author      string `json:"author"`
	CreatedUTC  int64  `json:"created_utc"`
	Permalink   string `json:"permalink"`
}

// ExtractedFields holds the attributes pulled out of a post's free text.
// All-nil fields are the expected majority case, not an error.
type ExtractedFields struct {
	Location      *string
	PurchasePrice *float64
	CityMentions  []string
}

// Post is a normalized Reddit row matching the warehouse schema.
type Post struct {
	PostID        string    `db:"post_id"`
	Subreddit     string    `db:"subreddit"`
	CreatedUTC    time.Time `db:"created_utc"`
	CreatedDate   time.Time `db:"created_date"`
	Title         string    `db:"title"`
	Selftext      string    `db:"selftext"`
	Score         int       `db:"score"`
	NumComments   int       `db:"num_comments"`
	Author        string    `db:"author"`
	Location      *string   `db:"location"`
	PurchasePrice *float64  `db:"purchase_price"`
	CityMentions  *string   `db:"city_mentions"`
	Permalink     string    `db:"permalink"`
	UpdatedAt     time.Time `db:"updated_at"`
}
