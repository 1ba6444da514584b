package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *float64:
			v, ok := row.values[i].(float64)
			if !ok {
				return errors.New("type assertion to float64 failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		case *sql.NullFloat64:
			if err := d.Scan(row.values[i]); err != nil {
				return err
			}
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

var (
	filterStart = time.Date(2026, 1, 29, 15, 30, 0, 0, time.UTC)
	filterEnd   = time.Date(2026, 2, 12, 15, 30, 0, 0, time.UTC)
)

func dayFilter() ports.DashboardFilter {
	return ports.DashboardFilter{Start: filterStart, End: filterEnd, Bucket: domain.BucketDay}
}

// ------------------------------------------------------------
// THROUGHPUT
// ------------------------------------------------------------

func TestMetricsRepository_Throughput(t *testing.T) {
	// session zone leaks onto "timestamp without time zone" values
	local := time.FixedZone("CET", 3600)
	rows := &fakeRowScanner{
		rows: []fakeRow{
			{values: []any{time.Date(2026, 2, 1, 0, 0, 0, 0, local), float64(3)}},
			{values: []any{time.Date(2026, 2, 2, 0, 0, 0, 0, local), float64(5)}},
		},
	}
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM tasks") || !strings.Contains(query, "status = 'done'") {
				t.Fatalf("unexpected query: %s", query)
			}
			return rows, nil
		},
	}

	repo := NewMetricsRepository(db)

	res, err := repo.Throughput(context.Background(), dayFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 points, got %d", len(res))
	}
	if !res[0].Period.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC wall time, got %s", res[0].Period)
	}
	if res[1].Value != 5 {
		t.Fatalf("expected value=5, got %v", res[1].Value)
	}
	if !rows.closed {
		t.Fatalf("expected rows to be closed")
	}

	if len(db.lastArgs) != 3 {
		t.Fatalf("expected 3 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != "day" {
		t.Fatalf("expected bucket arg=day, got %v", db.lastArgs[0])
	}
	if got := db.lastArgs[1].(time.Time); !got.Equal(filterStart) {
		t.Fatalf("expected start arg %s, got %s", filterStart, got)
	}
}

func TestMetricsRepository_UnsupportedBucket(t *testing.T) {
	db := &fakeDB{}
	repo := NewMetricsRepository(db)

	f := dayFilter()
	f.Bucket = "quarter"

	res, err := repo.Throughput(context.Background(), f)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res != nil {
		t.Fatalf("expected nil result")
	}
	if db.called {
		t.Fatalf("db should not be called with an unsupported bucket")
	}
}

// ------------------------------------------------------------
// CYCLE TIME
// ------------------------------------------------------------

func TestMetricsRepository_CycleTime(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "in_progress_at IS NOT NULL") {
				t.Fatalf("expected cycle time query, got: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), 12.5}},
				},
			}, nil
		},
	}

	repo := NewMetricsRepository(db)

	res, err := repo.CycleTime(context.Background(), dayFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Value != 12.5 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// ------------------------------------------------------------
// ERROR COUNTS
// ------------------------------------------------------------

func TestMetricsRepository_ErrorCounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM activity_events") {
				t.Fatalf("expected activity_events query, got: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), int64(2), int64(8)}},
				},
			}, nil
		},
	}

	repo := NewMetricsRepository(db)

	res, err := repo.ErrorCounts(context.Background(), dayFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Errors != 2 || res[0].Total != 8 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// ------------------------------------------------------------
// WIP
// ------------------------------------------------------------

func TestMetricsRepository_WipCounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), int64(1), int64(2), int64(3), int64(4)}},
				},
			}, nil
		},
	}

	repo := NewMetricsRepository(db)

	res, err := repo.WipCounts(context.Background(), dayFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 point, got %d", len(res))
	}
	p := res[0]
	if p.Inbox != 1 || p.InProgress != 2 || p.Review != 3 || p.Done != 4 {
		t.Fatalf("unexpected point: %+v", p)
	}
}

// ------------------------------------------------------------
// KPIs
// ------------------------------------------------------------

func TestMetricsRepository_Counts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if strings.Contains(query, "FROM agents") {
				return &fakeRowScanner{rows: []fakeRow{{values: []any{int64(4)}}}}, nil
			}
			return &fakeRowScanner{rows: []fakeRow{{values: []any{int64(9)}}}}, nil
		},
	}

	repo := NewMetricsRepository(db)

	agents, err := repo.CountActiveAgents(context.Background(), filterEnd.Add(-10*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agents != 4 {
		t.Fatalf("expected 4 active agents, got %d", agents)
	}

	inProgress, err := repo.CountTasksInProgress(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inProgress != 9 {
		t.Fatalf("expected 9 tasks in progress, got %d", inProgress)
	}
}

func TestMetricsRepository_MedianCycleTime(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "percentile_cont(0.5)") {
				t.Fatalf("expected percentile query, got: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{{values: []any{3.25}}}}, nil
		},
	}

	repo := NewMetricsRepository(db)

	median, err := repo.MedianCycleTimeHours(context.Background(), filterStart, filterEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if median == nil || *median != 3.25 {
		t.Fatalf("expected median=3.25, got %v", median)
	}
}

func TestMetricsRepository_MedianCycleTime_NoRows(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{{values: []any{nil}}}}, nil
		},
	}

	repo := NewMetricsRepository(db)

	median, err := repo.MedianCycleTimeHours(context.Background(), filterStart, filterEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if median != nil {
		t.Fatalf("expected nil median, got %v", *median)
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestMetricsRepository_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	repo := NewMetricsRepository(db)

	res, err := repo.WipCounts(context.Background(), dayFilter())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on error")
	}

	if _, err := repo.CountTasksInProgress(context.Background()); err == nil {
		t.Fatalf("expected error from count query")
	}
}

func TestMetricsRepository_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("stream broken")}, nil
		},
	}

	repo := NewMetricsRepository(db)

	if _, err := repo.ErrorCounts(context.Background(), dayFilter()); err == nil || err.Error() != "stream broken" {
		t.Fatalf("expected stream broken, got %v", err)
	}
}
