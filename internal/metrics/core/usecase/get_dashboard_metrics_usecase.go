package usecase

import (
	"context"
	"time"

	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultRange = domain.Range24h

	// agents seen within this window count as active
	ActiveAgentWindow = 10 * time.Minute
)

type GetDashboardMetricsInput struct {
	Range string // "" -> DefaultRange
}

type GetDashboardMetricsUseCase struct {
	reader ports.DashboardReaderPort
	now    func() time.Time
}

// NewGetDashboardMetricsUseCase wires the reader. A nil clock falls back to time.Now.
func NewGetDashboardMetricsUseCase(reader ports.DashboardReaderPort, now func() time.Time) *GetDashboardMetricsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetDashboardMetricsUseCase{reader: reader, now: now}
}

type seriesBundle struct {
	throughput domain.RangeSeries
	cycleTime  domain.RangeSeries
	errorRate  domain.RangeSeries
	wip        domain.WipRangeSeries

	errors int64
	total  int64
}

func (uc *GetDashboardMetricsUseCase) Execute(ctx context.Context, in GetDashboardMetricsInput) (*domain.DashboardMetrics, error) {
	key := DefaultRange
	if in.Range != "" {
		k, err := domain.ParseRangeKey(in.Range)
		if err != nil {
			return nil, err
		}
		key = k
	}

	now := uc.now().UTC()

	primary, err := domain.Resolve(key, now)
	if err != nil {
		return nil, err
	}
	comparison := primary.Comparison()

	var (
		primarySeries    seriesBundle
		comparisonSeries seriesBundle
		kpis             domain.Kpis
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		primarySeries, err = uc.loadSeries(gctx, primary)
		return err
	})
	g.Go(func() error {
		var err error
		comparisonSeries, err = uc.loadSeries(gctx, comparison)
		return err
	})
	g.Go(func() error {
		var err error
		kpis, err = uc.loadKpis(gctx, now)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kpis.ErrorRatePct = errorRatePct(primarySeries.errors, primarySeries.total)

	return &domain.DashboardMetrics{
		Range:       key,
		GeneratedAt: now,
		Kpis:        kpis,
		Throughput: domain.SeriesSet{
			Primary:    primarySeries.throughput,
			Comparison: comparisonSeries.throughput,
		},
		CycleTime: domain.SeriesSet{
			Primary:    primarySeries.cycleTime,
			Comparison: comparisonSeries.cycleTime,
		},
		ErrorRate: domain.SeriesSet{
			Primary:    primarySeries.errorRate,
			Comparison: comparisonSeries.errorRate,
		},
		Wip: domain.WipSeriesSet{
			Primary:    primarySeries.wip,
			Comparison: comparisonSeries.wip,
		},
	}, nil
}

func (uc *GetDashboardMetricsUseCase) loadSeries(ctx context.Context, window domain.RangeSpec) (seriesBundle, error) {
	var out seriesBundle

	filter := ports.DashboardFilter{
		Start:  window.Start,
		End:    window.End,
		Bucket: window.Bucket,
	}
	buckets := window.Buckets()

	throughput, err := uc.reader.Throughput(ctx, filter)
	if err != nil {
		return out, err
	}
	cycle, err := uc.reader.CycleTime(ctx, filter)
	if err != nil {
		return out, err
	}
	errCounts, err := uc.reader.ErrorCounts(ctx, filter)
	if err != nil {
		return out, err
	}
	wip, err := uc.reader.WipCounts(ctx, filter)
	if err != nil {
		return out, err
	}

	rates := make([]domain.SeriesPoint, 0, len(errCounts))
	for _, c := range errCounts {
		rates = append(rates, domain.SeriesPoint{
			Period: c.Period,
			Value:  errorRatePct(c.Errors, c.Total),
		})
		out.errors += c.Errors
		out.total += c.Total
	}

	out.throughput = densify(window, buckets, throughput)
	out.cycleTime = densify(window, buckets, cycle)
	out.errorRate = densify(window, buckets, rates)
	out.wip = densifyWip(window, buckets, wip)

	return out, nil
}

func (uc *GetDashboardMetricsUseCase) loadKpis(ctx context.Context, now time.Time) (domain.Kpis, error) {
	var k domain.Kpis

	active, err := uc.reader.CountActiveAgents(ctx, now.Add(-ActiveAgentWindow))
	if err != nil {
		return k, err
	}
	inProgress, err := uc.reader.CountTasksInProgress(ctx)
	if err != nil {
		return k, err
	}

	week, err := domain.Resolve(domain.Range7d, now)
	if err != nil {
		return k, err
	}
	median, err := uc.reader.MedianCycleTimeHours(ctx, week.Start, week.End)
	if err != nil {
		return k, err
	}

	k.ActiveAgents = active
	k.TasksInProgress = inProgress
	k.MedianCycleTimeHours7d = median
	return k, nil
}

// densify emits one point per bucket, zero where the reader returned nothing.
func densify(window domain.RangeSpec, buckets []time.Time, rows []domain.SeriesPoint) domain.RangeSeries {
	byPeriod := make(map[time.Time]float64, len(rows))
	for _, r := range rows {
		byPeriod[domain.BucketStart(r.Period, window.Bucket)] += r.Value
	}

	points := make([]domain.SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, domain.SeriesPoint{Period: b, Value: byPeriod[b]})
	}

	return domain.RangeSeries{Range: window.Key, Bucket: window.Bucket, Points: points}
}

func densifyWip(window domain.RangeSpec, buckets []time.Time, rows []domain.WipPoint) domain.WipRangeSeries {
	byPeriod := make(map[time.Time]domain.WipPoint, len(rows))
	for _, r := range rows {
		p := domain.BucketStart(r.Period, window.Bucket)
		acc := byPeriod[p]
		acc.Inbox += r.Inbox
		acc.InProgress += r.InProgress
		acc.Review += r.Review
		acc.Done += r.Done
		byPeriod[p] = acc
	}

	points := make([]domain.WipPoint, 0, len(buckets))
	for _, b := range buckets {
		p := byPeriod[b]
		p.Period = b
		points = append(points, p)
	}

	return domain.WipRangeSeries{Range: window.Key, Bucket: window.Bucket, Points: points}
}

func errorRatePct(errors, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(errors) / float64(total) * 100
}
