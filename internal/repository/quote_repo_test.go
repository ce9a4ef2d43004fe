package repository

import (
	"errors"
	"testing"
	"time"

	"solarquote/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newQuoteMock(t *testing.T) (*QuoteRequestSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewQuoteRequestSQLite(db), mock
}

func TestQuoteRequestSQLite_Append_GeneratesIDAndTimestamp(t *testing.T) {
	repo, mock := newQuoteMock(t)

	// Generated id and timestamp are unknown; match the arg shape.
	mock.ExpectExec("INSERT INTO quote_requests").
		WithArgs(sqlmock.AnyArg(), 7, sqlmock.AnyArg(),
			"Jane Doe", "jane@example.com", "+15551234567", "Lagos",
			28.6, 7.15, 80437.5, 133.0512, 4,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(testCtx(t), 7, models.QuoteRequest{
		// ID empty -> repo generates; SubmittedAt zero -> repo sets UTC now
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+15551234567",
		Location: "Lagos",
		Estimate: models.QuoteEstimate{
			TotalDailyKWh:           28.6,
			EstimatedSystemSizeKW:   7.15,
			EstimatedSystemCost:     80437.5,
			EstimatedMonthlySavings: 133.0512,
		},
		ApplianceCount: 4,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestQuoteRequestSQLite_Append_DBError(t *testing.T) {
	repo, mock := newQuoteMock(t)

	mock.ExpectExec("INSERT INTO quote_requests").
		WillReturnError(errors.New("down"))

	err := repo.Append(testCtx(t), 7, models.QuoteRequest{Name: "x"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestQuoteRequestSQLite_List_FiltersAndParsesTimestamps(t *testing.T) {
	repo, mock := newQuoteMock(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "submitted_at", "name", "email", "phone", "location",
		"total_daily_kwh", "system_size_kw", "system_cost", "monthly_savings", "appliance_count",
	}).AddRow("q-1", "2026-03-15 12:30:00", "Jane", "jane@example.com", "+15551234567", "Lagos",
		28.6, 7.15, 80437.5, 133.0512, 4)

	mock.ExpectQuery("SELECT id, submitted_at").
		WithArgs(7, "2026-03-01 00:00:00", "2026-03-31 23:59:59").
		WillReturnRows(rows)

	got, err := repo.List(testCtx(t), 7, from, to)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	want := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	if !got[0].SubmittedAt.Equal(want) {
		t.Fatalf("submitted_at = %v, want %v", got[0].SubmittedAt, want)
	}
	if got[0].Estimate.TotalDailyKWh != 28.6 || got[0].ApplianceCount != 4 {
		t.Fatalf("unexpected row: %+v", got[0])
	}
}

func TestQuoteRequestSQLite_List_NoBounds(t *testing.T) {
	repo, mock := newQuoteMock(t)

	rows := sqlmock.NewRows([]string{
		"id", "submitted_at", "name", "email", "phone", "location",
		"total_daily_kwh", "system_size_kw", "system_cost", "monthly_savings", "appliance_count",
	})
	mock.ExpectQuery("SELECT id, submitted_at").
		WithArgs(7).
		WillReturnRows(rows)

	got, err := repo.List(testCtx(t), 7, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
