package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

var _ ports.DashboardReaderPort = (*MetricsRepository)(nil)

// Buckets are truncated in UTC; Postgres weeks start on Monday.
const throughputSQL = `
SELECT
    date_trunc($1, updated_at AT TIME ZONE 'UTC') AS period,
    COUNT(*)::float8 AS value
FROM tasks
WHERE status = 'done'
  AND updated_at BETWEEN $2 AND $3
GROUP BY period
ORDER BY period`

const cycleTimeSQL = `
SELECT
    date_trunc($1, updated_at AT TIME ZONE 'UTC') AS period,
    AVG(EXTRACT(EPOCH FROM (updated_at - in_progress_at)) / 3600.0)::float8 AS value
FROM tasks
WHERE status = 'done'
  AND in_progress_at IS NOT NULL
  AND updated_at BETWEEN $2 AND $3
GROUP BY period
ORDER BY period`

const errorCountsSQL = `
SELECT
    date_trunc($1, created_at AT TIME ZONE 'UTC') AS period,
    COUNT(*) FILTER (WHERE event_type LIKE '%failed') AS errors,
    COUNT(*) AS total
FROM activity_events
WHERE created_at BETWEEN $2 AND $3
GROUP BY period
ORDER BY period`

const wipCountsSQL = `
SELECT
    date_trunc($1, updated_at AT TIME ZONE 'UTC') AS period,
    COUNT(*) FILTER (WHERE status = 'inbox') AS inbox,
    COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress,
    COUNT(*) FILTER (WHERE status = 'review') AS review,
    COUNT(*) FILTER (WHERE status = 'done') AS done
FROM tasks
WHERE updated_at BETWEEN $2 AND $3
GROUP BY period
ORDER BY period`

const activeAgentsSQL = `
SELECT COUNT(*)
FROM agents
WHERE last_seen_at >= $1`

const tasksInProgressSQL = `
SELECT COUNT(*)
FROM tasks
WHERE status = 'in_progress'`

const medianCycleTimeSQL = `
SELECT
    percentile_cont(0.5) WITHIN GROUP (
        ORDER BY EXTRACT(EPOCH FROM (updated_at - in_progress_at)) / 3600.0
    )::float8
FROM tasks
WHERE status = 'done'
  AND in_progress_at IS NOT NULL
  AND updated_at BETWEEN $1 AND $2`

func (r *MetricsRepository) Throughput(ctx context.Context, f ports.DashboardFilter) ([]domain.SeriesPoint, error) {
	return r.querySeries(ctx, throughputSQL, f)
}

func (r *MetricsRepository) CycleTime(ctx context.Context, f ports.DashboardFilter) ([]domain.SeriesPoint, error) {
	return r.querySeries(ctx, cycleTimeSQL, f)
}

func (r *MetricsRepository) ErrorCounts(ctx context.Context, f ports.DashboardFilter) ([]domain.ErrorCount, error) {
	rows, err := r.queryBuckets(ctx, errorCountsSQL, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ErrorCount
	for rows.Next() {
		var ts time.Time
		var errs, total int64

		if err := rows.Scan(&ts, &errs, &total); err != nil {
			return nil, err
		}

		out = append(out, domain.ErrorCount{
			Period: asUTC(ts),
			Errors: errs,
			Total:  total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MetricsRepository) WipCounts(ctx context.Context, f ports.DashboardFilter) ([]domain.WipPoint, error) {
	rows, err := r.queryBuckets(ctx, wipCountsSQL, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WipPoint
	for rows.Next() {
		var p domain.WipPoint
		var ts time.Time

		if err := rows.Scan(&ts, &p.Inbox, &p.InProgress, &p.Review, &p.Done); err != nil {
			return nil, err
		}
		p.Period = asUTC(ts)

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MetricsRepository) CountActiveAgents(ctx context.Context, since time.Time) (int64, error) {
	return r.queryCount(ctx, activeAgentsSQL, since.UTC())
}

func (r *MetricsRepository) CountTasksInProgress(ctx context.Context) (int64, error) {
	return r.queryCount(ctx, tasksInProgressSQL)
}

// MedianCycleTimeHours returns nil when no task finished in the window.
func (r *MetricsRepository) MedianCycleTimeHours(ctx context.Context, start, end time.Time) (*float64, error) {
	rows, err := r.db.QueryContext(ctx, medianCycleTimeSQL, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var median sql.NullFloat64
	if rows.Next() {
		if err := rows.Scan(&median); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !median.Valid {
		return nil, nil
	}
	v := median.Float64
	return &v, nil
}

func (r *MetricsRepository) querySeries(ctx context.Context, query string, f ports.DashboardFilter) ([]domain.SeriesPoint, error) {
	rows, err := r.queryBuckets(ctx, query, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SeriesPoint
	for rows.Next() {
		var ts time.Time
		var value float64

		if err := rows.Scan(&ts, &value); err != nil {
			return nil, err
		}

		out = append(out, domain.SeriesPoint{Period: asUTC(ts), Value: value})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MetricsRepository) queryCount(ctx context.Context, query string, args ...any) (int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *MetricsRepository) queryBuckets(ctx context.Context, query string, f ports.DashboardFilter) (RowScanner, error) {
	// the bucket ends up in date_trunc; only the known units are allowed
	if !f.Bucket.Valid() {
		return nil, fmt.Errorf("unsupported bucket: %s", f.Bucket)
	}
	return r.db.QueryContext(ctx, query, string(f.Bucket), f.Start.UTC(), f.End.UTC())
}

// asUTC reinterprets a "timestamp without time zone" value as UTC wall time.
// The driver may attach the session zone to it.
func asUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
