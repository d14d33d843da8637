package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"housing_signals/internal/domain"
)

type TrendStore struct {
	db *sqlx.DB
}

func NewTrendStore(db *sqlx.DB) *TrendStore {
	return &TrendStore{db: db}
}

// ExistingKeys returns which of the batch's natural keys are already present
// in the warehouse, probing only the incoming keys with a tuple IN list.
func (s *TrendStore) ExistingKeys(ctx context.Context, rows []domain.WeeklyInterest) (map[domain.WeeklyKey]struct{}, error) {
	existing := make(map[domain.WeeklyKey]struct{})
	if len(rows) == 0 {
		return existing, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT week_start_date, search_term, region
		FROM trends_weekly
		WHERE (week_start_date, search_term, region) IN (`)

	args := make([]interface{}, 0, len(rows)*3)
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 3
		sb.WriteString("($" + strconv.Itoa(base+1) + ", $" + strconv.Itoa(base+2) + ", $" + strconv.Itoa(base+3) + ")")
		args = append(args, r.WeekStartDate, r.SearchTerm, r.Region)
	}
	sb.WriteString(")")

	dbRows, err := GetExecutor(ctx, s.db).QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer dbRows.Close()

	for dbRows.Next() {
		var k domain.WeeklyKey
		if err := dbRows.Scan(&k.WeekStartDate, &k.SearchTerm, &k.Region); err != nil {
			return nil, err
		}
		k.WeekStartDate = k.WeekStartDate.UTC()
		existing[k] = struct{}{}
	}

	return existing, dbRows.Err()
}

// InsertBatch appends rows, stamping updated_at at insert time. Key
// collisions are left untouched (first write wins). Returns the number of
// rows inserted.
func (s *TrendStore) InsertBatch(ctx context.Context, rows []domain.WeeklyInterest) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO trends_weekly (
			week_start_date, search_term, category, avg_interest_score, region, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, now()
		)
		ON CONFLICT (week_start_date, search_term, region) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	inserted := 0

	for _, r := range rows {
		res, err := exec.ExecContext(ctx, query,
			r.WeekStartDate,
			r.SearchTerm,
			r.Category,
			r.AvgInterestScore,
			r.Region,
		)
		if err != nil {
			return inserted, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(n)
	}

	return inserted, nil
}
