package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing_signals/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "sunday maps to itself", in: day(2026, 3, 1), want: day(2026, 3, 1)},
		{name: "monday", in: day(2026, 3, 2), want: day(2026, 3, 1)},
		{name: "saturday", in: day(2026, 3, 7), want: day(2026, 3, 1)},
		{name: "time of day ignored", in: time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC), want: day(2026, 3, 1)},
		{name: "crosses month boundary", in: day(2026, 4, 1), want: day(2026, 3, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestAggregateWeekly_FullWeekAverage(t *testing.T) {
	week := day(2026, 3, 1)

	points := make([]domain.InterestPoint, 7)
	for i := range points {
		points[i] = domain.InterestPoint{Date: week.AddDate(0, 0, i), Score: 10 * (i + 1)}
	}

	rows := AggregateWeekly(points, "home insurance", "Financial Friction", "US")

	require.Len(t, rows, 1)
	assert.Equal(t, week, rows[0].WeekStartDate)
	assert.Equal(t, "home insurance", rows[0].SearchTerm)
	assert.Equal(t, "Financial Friction", rows[0].Category)
	assert.Equal(t, "US", rows[0].Region)
	// (10+20+30+40+50+60+70)/7 = 40
	assert.Equal(t, 40, rows[0].AvgInterestScore)
}

func TestAggregateWeekly_RoundsHalfUp(t *testing.T) {
	week := day(2026, 3, 1)

	rows := AggregateWeekly([]domain.InterestPoint{
		{Date: week, Score: 1},
		{Date: week.AddDate(0, 0, 1), Score: 2},
	}, "t", "c", "US")

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].AvgInterestScore)
}

func TestAggregateWeekly_SkipsEmptyWeeks(t *testing.T) {
	// Samples two weeks apart: the gap week produces no row.
	rows := AggregateWeekly([]domain.InterestPoint{
		{Date: day(2026, 3, 2), Score: 50},
		{Date: day(2026, 3, 16), Score: 70},
	}, "t", "c", "US")

	require.Len(t, rows, 2)
	assert.Equal(t, day(2026, 3, 1), rows[0].WeekStartDate)
	assert.Equal(t, day(2026, 3, 15), rows[1].WeekStartDate)
}

func TestAggregateWeekly_SortedByWeek(t *testing.T) {
	rows := AggregateWeekly([]domain.InterestPoint{
		{Date: day(2026, 3, 20), Score: 30},
		{Date: day(2026, 3, 3), Score: 10},
		{Date: day(2026, 3, 11), Score: 20},
	}, "t", "c", "US")

	require.Len(t, rows, 3)
	assert.True(t, rows[0].WeekStartDate.Before(rows[1].WeekStartDate))
	assert.True(t, rows[1].WeekStartDate.Before(rows[2].WeekStartDate))
}

func TestDedupWeekly_KeepsFirst(t *testing.T) {
	week := day(2026, 3, 1)

	rows := DedupWeekly([]domain.WeeklyInterest{
		{WeekStartDate: week, SearchTerm: "t", Region: "US", AvgInterestScore: 10},
		{WeekStartDate: week, SearchTerm: "t", Region: "US", AvgInterestScore: 99},
		{WeekStartDate: week, SearchTerm: "other", Region: "US", AvgInterestScore: 20},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[0].AvgInterestScore)
	assert.Equal(t, "other", rows[1].SearchTerm)
}
