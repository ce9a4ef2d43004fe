package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"solarquote/internal/models"

	"github.com/google/uuid"
)

type QuoteRequestSQLite struct {
	db *sql.DB
}

func NewQuoteRequestSQLite(db *sql.DB) *QuoteRequestSQLite { return &QuoteRequestSQLite{db: db} }

var _ QuoteRequestRepo = (*QuoteRequestSQLite)(nil)

// sqliteTimestampLayout is the TIMESTAMP format SQLite compares lexically.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

// Append inserts a submission. If ID or SubmittedAt are empty, they're set.
func (r *QuoteRequestSQLite) Append(ctx context.Context, userID int, q models.QuoteRequest) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.SubmittedAt.IsZero() {
		q.SubmittedAt = time.Now().UTC()
	} else {
		q.SubmittedAt = q.SubmittedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quote_requests
			(id, user_id, submitted_at, name, email, phone, location,
			 total_daily_kwh, system_size_kw, system_cost, monthly_savings, appliance_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		q.ID,
		userID,
		q.SubmittedAt.Format(sqliteTimestampLayout),
		q.Name,
		q.Email,
		q.Phone,
		q.Location,
		q.Estimate.TotalDailyKWh,
		q.Estimate.EstimatedSystemSizeKW,
		q.Estimate.EstimatedSystemCost,
		q.Estimate.EstimatedMonthlySavings,
		q.ApplianceCount,
	)
	return err
}

// List returns the user's submissions filtered by [from, to] (inclusive),
// oldest first. Zero bounds mean unbounded.
func (r *QuoteRequestSQLite) List(ctx context.Context, userID int, from, to time.Time) ([]models.QuoteRequest, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "submitted_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimestampLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "submitted_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimestampLayout))
	}

	query := `
		SELECT id, submitted_at, name, email, phone, location,
		       total_daily_kwh, system_size_kw, system_cost, monthly_savings, appliance_count
		FROM quote_requests
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY submitted_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.QuoteRequest
	for rows.Next() {
		var (
			q  models.QuoteRequest
			ts string
		)
		if err := rows.Scan(
			&q.ID, &ts, &q.Name, &q.Email, &q.Phone, &q.Location,
			&q.Estimate.TotalDailyKWh, &q.Estimate.EstimatedSystemSizeKW,
			&q.Estimate.EstimatedSystemCost, &q.Estimate.EstimatedMonthlySavings,
			&q.ApplianceCount,
		); err != nil {
			return nil, err
		}
		if t, err := time.Parse(sqliteTimestampLayout, ts); err == nil {
			q.SubmittedAt = t.UTC()
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
