// Package store persists reports in SQLite. The service assumes the
// single-writer, multiple-reader model SQLite provides natively; there is
// no multi-step transaction spanning a user interaction.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/crimewatch/report-service/internal/domain"
)

const dateLayout = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	occurred_date TEXT NOT NULL,
	occurred_time TEXT NOT NULL,
	crime_type    TEXT NOT NULL,
	description   TEXT NOT NULL,
	area          TEXT NOT NULL,
	address       TEXT NOT NULL DEFAULT '',
	latitude      REAL NOT NULL,
	longitude     REAL NOT NULL,
	day_of_week   TEXT NOT NULL,
	month         INTEGER NOT NULL,
	evidence_path TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_area ON reports(area);
CREATE INDEX IF NOT EXISTS idx_reports_crime_type ON reports(crime_type);
CREATE INDEX IF NOT EXISTS idx_reports_occurred_date ON reports(occurred_date);
`

// Store is a SQLite-backed report collection. Append-only: the core never
// updates or deletes rows.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path (":memory:" for tests) and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open report store: %w: %v", domain.ErrStoreUnavailable, err)
	}

	// SQLite handles one writer at a time; a larger pool only produces
	// SQLITE_BUSY under write contention.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the store is reachable. Used by the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Insert appends a report and assigns its ID. All fields except ID must be
// populated by the caller; derived fields are stored as received, never
// recomputed here.
func (s *Store) Insert(ctx context.Context, report *domain.Report) error {
	const query = `
		INSERT INTO reports (occurred_date, occurred_time, crime_type, description,
			area, address, latitude, longitude, day_of_week, month,
			evidence_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		report.OccurredDate.Format(dateLayout),
		report.OccurredTime.String(),
		string(report.CrimeType),
		report.Description,
		string(report.Area),
		report.Address,
		report.Latitude,
		report.Longitude,
		report.DayOfWeek,
		report.Month,
		report.EvidencePath,
		report.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w: %v", domain.ErrStoreUnavailable, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert report id: %w", err)
	}
	report.ID = id
	return nil
}

// All returns every report, ordered by occurred date then ID.
func (s *Store) All(ctx context.Context) ([]domain.Report, error) {
	return s.Search(ctx, domain.Filter{})
}

// Search returns the reports matching the filter, ordered by occurred date
// then ID for deterministic results. The filter is assumed validated by the
// caller; see domain.Filter.Validate.
func (s *Store) Search(ctx context.Context, filter domain.Filter) ([]domain.Report, error) {
	query := `
		SELECT id, occurred_date, occurred_time, crime_type, description,
			area, address, latitude, longitude, day_of_week, month,
			evidence_path, created_at
		FROM reports`

	var clauses []string
	var args []any

	if filter.Area != "" {
		clauses = append(clauses, "area = ?")
		args = append(args, string(filter.Area))
	}
	if filter.CrimeType != "" {
		clauses = append(clauses, "crime_type = ?")
		args = append(args, string(filter.CrimeType))
	}
	if filter.HasDateRange() {
		clauses = append(clauses, "occurred_date >= ?", "occurred_date <= ?")
		args = append(args, filter.DateFrom.Format(dateLayout), filter.DateTo.Format(dateLayout))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY occurred_date ASC, id ASC"

	var rows []reportRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search reports: %w: %v", domain.ErrStoreUnavailable, err)
	}

	reports := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		report, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode report %d: %w", row.ID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// reportRow mirrors the reports table, keeping date columns in their stored
// TEXT form so scanning stays driver-independent.
type reportRow struct {
	ID           int64            `db:"id"`
	OccurredDate string           `db:"occurred_date"`
	OccurredTime domain.TimeOfDay `db:"occurred_time"`
	CrimeType    string           `db:"crime_type"`
	Description  string           `db:"description"`
	Area         string           `db:"area"`
	Address      string           `db:"address"`
	Latitude     float64          `db:"latitude"`
	Longitude    float64          `db:"longitude"`
	DayOfWeek    string           `db:"day_of_week"`
	Month        int              `db:"month"`
	EvidencePath string           `db:"evidence_path"`
	CreatedAt    string           `db:"created_at"`
}

func (r reportRow) toDomain() (domain.Report, error) {
	occurred, err := time.Parse(dateLayout, r.OccurredDate)
	if err != nil {
		return domain.Report{}, fmt.Errorf("occurred_date: %w", err)
	}
	created, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.Report{}, fmt.Errorf("created_at: %w", err)
	}

	return domain.Report{
		ID:           r.ID,
		OccurredDate: occurred,
		OccurredTime: r.OccurredTime,
		CrimeType:    domain.CrimeType(r.CrimeType),
		Description:  r.Description,
		Area:         domain.Area(r.Area),
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		DayOfWeek:    r.DayOfWeek,
		Month:        r.Month,
		EvidencePath: r.EvidencePath,
		CreatedAt:    created,
	}, nil
}
