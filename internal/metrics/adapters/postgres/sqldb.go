package postgres

import (
	"context"
	"database/sql"
	"time"
)

type sqlRows struct {
	rows   *sql.Rows
	cancel context.CancelFunc
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

// Close releases the rows and the per-query deadline.
func (r *sqlRows) Close() error {
	defer r.cancel()
	return r.rows.Close()
}

type sqlDB struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLDB wraps db. A positive timeout bounds every query, including row iteration.
func NewSQLDB(db *sql.DB, timeout time.Duration) DB {
	return &sqlDB{db: db, timeout: timeout}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &sqlRows{rows: rows, cancel: cancel}, nil
}
