// Package normalize reshapes raw fetched records into warehouse rows.
// Both normalizers are deterministic: identical raw input yields identical
// output, with no wall-clock-dependent fields. The updated_at insertion
// stamp is applied by the writer, not here.
package normalize

import (
	"time"

	"housing_signals/internal/domain"
	"housing_signals/internal/extract"
)

const permalinkBase = "https://reddit.com"

// Reddit maps raw PullPush submissions to warehouse rows, merging in the
// extracted fields.
type Reddit struct {
	extractor *extract.Extractor
}

func NewReddit(extractor *extract.Extractor) *Reddit {
	return &Reddit{extractor: extractor}
}

// Normalize produces one row per raw post. Deleted/removed posts are
// skipped, and duplicate post IDs within the batch keep only the first
// occurrence in arrival order.
func (n *Reddit) Normalize(subreddit string, raw []domain.RawPost) []domain.Post {
	seen := make(map[string]struct{}, len(raw))
	rows := make([]domain.Post, 0, len(raw))

	for _, p := range raw {
		if p.ID == "" {
			continue
		}
		if p.Selftext == "[deleted]" || p.Selftext == "[removed]" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}

		title := extract.NormalizeText(p.Title)
		selftext := extract.NormalizeText(p.Selftext)
		fields := n.extractor.Extract(title, selftext)

		createdUTC := time.Unix(p.CreatedUTC, 0).UTC()
		author := p.Author
		if author == "" {
			author = "[deleted]"
		}

		rows = append(rows, domain.Post{
			PostID:        p.ID,
			Subreddit:     subreddit,
			CreatedUTC:    createdUTC,
			CreatedDate:   createdUTC.Truncate(24 * time.Hour),
			Title:         title,
			Selftext:      selftext,
			Score:         p.Score,
			NumComments:   p.NumComments,
			Author:        author,
			Location:      fields.Location,
			PurchasePrice: fields.PurchasePrice,
			CityMentions:  extract.JoinCities(fields.CityMentions),
			Permalink:     permalinkBase + p.Permalink,
		})
	}

	return rows
}
