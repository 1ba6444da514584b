package domain

import "time"

// Task statuses tracked by the WIP series.
const (
	StatusInbox      = "inbox"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusDone       = "done"
)

type SeriesPoint struct {
	Period time.Time
	Value  float64
}

type WipPoint struct {
	Period     time.Time
	Inbox      int64
	InProgress int64
	Review     int64
	Done       int64
}

// ErrorCount is the raw activity tally for one bucket.
type ErrorCount struct {
	Period time.Time
	Errors int64
	Total  int64
}

type RangeSeries struct {
	Range  RangeKey
	Bucket BucketKey
	Points []SeriesPoint
}

type WipRangeSeries struct {
	Range  RangeKey
	Bucket BucketKey
	Points []WipPoint
}

type SeriesSet struct {
	Primary    RangeSeries
	Comparison RangeSeries
}

type WipSeriesSet struct {
	Primary    WipRangeSeries
	Comparison WipRangeSeries
}

type Kpis struct {
	ActiveAgents           int64
	TasksInProgress        int64
	ErrorRatePct           float64
	MedianCycleTimeHours7d *float64 // nil when no task finished in the last 7 days
}

type DashboardMetrics struct {
	Range       RangeKey
	GeneratedAt time.Time
	Kpis        Kpis
	Throughput  SeriesSet
	CycleTime   SeriesSet
	ErrorRate   SeriesSet
	Wip         WipSeriesSet
}
