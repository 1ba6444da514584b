package fiber

import (
	"time"

	"dashboard-metrics-service/internal/metrics/core/domain"
)

type SeriesPointResponse struct {
	Period time.Time `json:"period" example:"2026-02-12T00:00:00Z"`
	Value  float64   `json:"value" example:"4"`
}

type WipPointResponse struct {
	Period     time.Time `json:"period" example:"2026-02-12T00:00:00Z"`
	Inbox      int64     `json:"inbox"`
	InProgress int64     `json:"in_progress"`
	Review     int64     `json:"review"`
	Done       int64     `json:"done"`
}

type RangeSeriesResponse struct {
	Range  string                `json:"range" example:"7d"`
	Bucket string                `json:"bucket" example:"day"`
	Points []SeriesPointResponse `json:"points"`
}

type WipRangeSeriesResponse struct {
	Range  string             `json:"range" example:"7d"`
	Bucket string             `json:"bucket" example:"day"`
	Points []WipPointResponse `json:"points"`
}

type SeriesSetResponse struct {
	Primary    RangeSeriesResponse `json:"primary"`
	Comparison RangeSeriesResponse `json:"comparison"`
}

type WipSeriesSetResponse struct {
	Primary    WipRangeSeriesResponse `json:"primary"`
	Comparison WipRangeSeriesResponse `json:"comparison"`
}

type KpisResponse struct {
	ActiveAgents           int64    `json:"active_agents"`
	TasksInProgress        int64    `json:"tasks_in_progress"`
	ErrorRatePct           float64  `json:"error_rate_pct"`
	MedianCycleTimeHours7d *float64 `json:"median_cycle_time_hours_7d"`
}

// DashboardMetricsResponse is the full dashboard payload.
// @Description Dashboard KPIs and primary/comparison time series
type DashboardMetricsResponse struct {
	Range       string               `json:"range" example:"7d"`
	GeneratedAt time.Time            `json:"generated_at"`
	Kpis        KpisResponse         `json:"kpis"`
	Throughput  SeriesSetResponse    `json:"throughput"`
	CycleTime   SeriesSetResponse    `json:"cycle_time"`
	ErrorRate   SeriesSetResponse    `json:"error_rate"`
	Wip         WipSeriesSetResponse `json:"wip"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message,omitempty" example:"invalid range key: \"2w\""`
}

func toDashboardResponse(m *domain.DashboardMetrics) DashboardMetricsResponse {
	return DashboardMetricsResponse{
		Range:       string(m.Range),
		GeneratedAt: m.GeneratedAt,
		Kpis: KpisResponse{
			ActiveAgents:           m.Kpis.ActiveAgents,
			TasksInProgress:        m.Kpis.TasksInProgress,
			ErrorRatePct:           m.Kpis.ErrorRatePct,
			MedianCycleTimeHours7d: m.Kpis.MedianCycleTimeHours7d,
		},
		Throughput: toSeriesSet(m.Throughput),
		CycleTime:  toSeriesSet(m.CycleTime),
		ErrorRate:  toSeriesSet(m.ErrorRate),
		Wip: WipSeriesSetResponse{
			Primary:    toWipSeries(m.Wip.Primary),
			Comparison: toWipSeries(m.Wip.Comparison),
		},
	}
}

func toSeriesSet(s domain.SeriesSet) SeriesSetResponse {
	return SeriesSetResponse{
		Primary:    toSeries(s.Primary),
		Comparison: toSeries(s.Comparison),
	}
}

func toSeries(s domain.RangeSeries) RangeSeriesResponse {
	points := make([]SeriesPointResponse, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, SeriesPointResponse{Period: p.Period, Value: p.Value})
	}
	return RangeSeriesResponse{Range: string(s.Range), Bucket: string(s.Bucket), Points: points}
}

func toWipSeries(s domain.WipRangeSeries) WipRangeSeriesResponse {
	points := make([]WipPointResponse, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, WipPointResponse{
			Period:     p.Period,
			Inbox:      p.Inbox,
			InProgress: p.InProgress,
			Review:     p.Review,
			Done:       p.Done,
		})
	}
	return WipRangeSeriesResponse{Range: string(s.Range), Bucket: string(s.Bucket), Points: points}
}
