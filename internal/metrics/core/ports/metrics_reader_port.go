package ports

import (
	"context"
	"time"

	"dashboard-metrics-service/internal/metrics/core/domain"
)

// DashboardFilter selects rows in [Start, End] grouped by Bucket.
type DashboardFilter struct {
	Start  time.Time
	End    time.Time
	Bucket domain.BucketKey
}

// DashboardReaderPort returns sparse per-bucket rows; buckets without data are omitted.
type DashboardReaderPort interface {
	Throughput(ctx context.Context, f DashboardFilter) ([]domain.SeriesPoint, error)
	CycleTime(ctx context.Context, f DashboardFilter) ([]domain.SeriesPoint, error)
	ErrorCounts(ctx context.Context, f DashboardFilter) ([]domain.ErrorCount, error)
	WipCounts(ctx context.Context, f DashboardFilter) ([]domain.WipPoint, error)

	CountActiveAgents(ctx context.Context, since time.Time) (int64, error)
	CountTasksInProgress(ctx context.Context) (int64, error)
	MedianCycleTimeHours(ctx context.Context, start, end time.Time) (*float64, error)
}
