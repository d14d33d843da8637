package normalize

import (
	"math"
	"sort"
	"time"

	"housing_signals/internal/domain"
)

// WeekStart returns the Sunday starting the ISO-week-with-Sunday-start that
// contains t, at UTC midnight.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// AggregateWeekly groups daily interest points into Sunday-starting weekly
// buckets and averages the scores, rounding half-up to an integer. Weeks
// with no samples produce no row. Output is sorted by week start date.
func AggregateWeekly(points []domain.InterestPoint, term, category, region string) []domain.WeeklyInterest {
	type bucket struct {
		sum   int
		count int
	}

	buckets := make(map[time.Time]*bucket)
	for _, p := range points {
		week := WeekStart(p.Date)
		b, ok := buckets[week]
		if !ok {
			b = &bucket{}
			buckets[week] = b
		}
		b.sum += p.Score
		b.count++
	}

	rows := make([]domain.WeeklyInterest, 0, len(buckets))
	for week, b := range buckets {
		avg := int(math.Floor(float64(b.sum)/float64(b.count) + 0.5))
		rows = append(rows, domain.WeeklyInterest{
			WeekStartDate:    week,
			SearchTerm:       term,
			Category:         category,
			AvgInterestScore: avg,
			Region:           region,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
	})

	return rows
}

// DedupWeekly drops rows whose natural key repeats within the batch,
// keeping the first occurrence.
func DedupWeekly(rows []domain.WeeklyInterest) []domain.WeeklyInterest {
	type key struct {
		week   time.Time
		term   string
		region string
	}

	seen := make(map[key]struct{}, len(rows))
	out := make([]domain.WeeklyInterest, 0, len(rows))
	for _, r := range rows {
		k := key{week: r.WeekStartDate, term: r.SearchTerm, region: r.Region}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
