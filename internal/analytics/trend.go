package analytics

import (
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
)

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// ChartBuckets is the fixed bucket count used for dashboard charts.
const ChartBuckets = 4

// ClassifyTrend compares bookings created in the most recent windowDays-day
// window against the immediately preceding window of equal length.
// Thresholds: up above 1.1x the previous count, down below 0.9x. A positive
// recent count over a zero previous count is up (1.1 x 0 is 0); two empty
// windows are stable, never a divide error.
func ClassifyTrend(list []enrich.Booking, now time.Time, windowDays int) string {
	if windowDays <= 0 {
		windowDays = 7
	}
	recentStart := now.AddDate(0, 0, -windowDays)
	prevStart := now.AddDate(0, 0, -2*windowDays)

	var recent, previous int
	for _, b := range list {
		c := b.CreatedAt
		switch {
		case !c.Before(recentStart) && !c.After(now):
			recent++
		case !c.Before(prevStart) && c.Before(recentStart):
			previous++
		}
	}

	switch {
	case float64(recent) > 1.1*float64(previous):
		return TrendUp
	case float64(recent) < 0.9*float64(previous):
		return TrendDown
	default:
		return TrendStable
	}
}

// PeriodBucket is one contiguous slice of the reporting window.
type PeriodBucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int       `json:"count"`
}

// BucketPeriods partitions the window [now - range, now] into ChartBuckets
// equal contiguous buckets and counts bookings whose created timestamp falls
// in [bucketStart, bucketEnd).
func BucketPeriods(list []enrich.Booking, timeRange TimeRange, now time.Time) []PeriodBucket {
	start := now.AddDate(0, 0, -timeRange.Days())
	span := now.Sub(start)
	width := span / ChartBuckets

	buckets := make([]PeriodBucket, ChartBuckets)
	for i := range buckets {
		bStart := start.Add(time.Duration(i) * width)
		bEnd := bStart.Add(width)
		if i == ChartBuckets-1 {
			bEnd = now
		}
		buckets[i] = PeriodBucket{
			Label: timeRange.BucketLabel(i + 1),
			Start: bStart,
			End:   bEnd,
		}
	}

	for _, b := range list {
		c := b.CreatedAt
		for i := range buckets {
			if !c.Before(buckets[i].Start) && c.Before(buckets[i].End) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
