package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRangeKey = errors.New("invalid range key")

type RangeKey string

const (
	Range24h RangeKey = "24h"
	Range3d  RangeKey = "3d"
	Range7d  RangeKey = "7d"
	Range14d RangeKey = "14d"
	Range1m  RangeKey = "1m"
	Range3m  RangeKey = "3m"
	Range6m  RangeKey = "6m"
	Range1y  RangeKey = "1y"
)

type BucketKey string

const (
	BucketHour  BucketKey = "hour"
	BucketDay   BucketKey = "day"
	BucketWeek  BucketKey = "week"
	BucketMonth BucketKey = "month"
)

const day = 24 * time.Hour

func (b BucketKey) Valid() bool {
	switch b {
	case BucketHour, BucketDay, BucketWeek, BucketMonth:
		return true
	}
	return false
}

type rangeDef struct {
	duration time.Duration
	bucket   BucketKey
}

var rangeTable = map[RangeKey]rangeDef{
	Range24h: {duration: 24 * time.Hour, bucket: BucketHour},
	Range3d:  {duration: 3 * day, bucket: BucketDay},
	Range7d:  {duration: 7 * day, bucket: BucketDay},
	Range14d: {duration: 14 * day, bucket: BucketDay},
	Range1m:  {duration: 30 * day, bucket: BucketDay},
	Range3m:  {duration: 90 * day, bucket: BucketWeek},
	Range6m:  {duration: 180 * day, bucket: BucketWeek},
	Range1y:  {duration: 365 * day, bucket: BucketMonth},
}

// Valid reports whether k is one of the supported range keys.
func (k RangeKey) Valid() bool {
	_, ok := rangeTable[k]
	return ok
}

// ParseRangeKey validates a raw query value.
func ParseRangeKey(s string) (RangeKey, error) {
	k := RangeKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRangeKey, s)
	}
	return k, nil
}

// RangeSpec is a resolved reporting window. It is a value; copies are independent.
type RangeSpec struct {
	Key      RangeKey
	Bucket   BucketKey
	Duration time.Duration
	Start    time.Time
	End      time.Time
}

// Resolve maps key to the window ending at now.
func Resolve(key RangeKey, now time.Time) (RangeSpec, error) {
	def, ok := rangeTable[key]
	if !ok {
		return RangeSpec{}, fmt.Errorf("%w: %q", ErrInvalidRangeKey, string(key))
	}

	return RangeSpec{
		Key:      key,
		Bucket:   def.bucket,
		Duration: def.duration,
		Start:    now.Add(-def.duration),
		End:      now,
	}, nil
}

// Comparison returns the window of equal length immediately before s.
func (s RangeSpec) Comparison() RangeSpec {
	c := s
	c.Start = s.Start.Add(-s.Duration)
	c.End = s.End.Add(-s.Duration)
	return c
}

// Buckets returns the bucket boundaries covering the window, starting at the
// bucket that contains Start and ending with the last boundary <= End.
func (s RangeSpec) Buckets() []time.Time {
	if !s.Bucket.Valid() {
		return nil
	}

	end := s.End.UTC()
	cursor := BucketStart(s.Start, s.Bucket)

	var out []time.Time
	for !cursor.After(end) {
		out = append(out, cursor)
		cursor = nextBucket(cursor, s.Bucket)
	}
	return out
}

// BucketStart floors t (in UTC) to the start of its bucket.
// Weeks start on Monday.
func BucketStart(t time.Time, bucket BucketKey) time.Time {
	t = t.UTC()
	y, m, d := t.Date()

	switch bucket {
	case BucketHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, time.UTC)
	case BucketDay:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case BucketWeek:
		offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	case BucketMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

func nextBucket(t time.Time, bucket BucketKey) time.Time {
	switch bucket {
	case BucketHour:
		return t.Add(time.Hour)
	case BucketDay:
		return t.AddDate(0, 0, 1)
	case BucketWeek:
		return t.AddDate(0, 0, 7)
	case BucketMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t
	}
}
