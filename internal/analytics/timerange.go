package analytics

import (
	"fmt"
	"strings"
)

// TimeRange selects the reporting window and the labelling granularity for
// period buckets.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
)

// ParseTimeRange maps a query value to a TimeRange, defaulting to month.
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(strings.ToLower(strings.TrimSpace(s))) {
	case RangeWeek:
		return RangeWeek
	case RangeQuarter:
		return RangeQuarter
	case RangeYear:
		return RangeYear
	default:
		return RangeMonth
	}
}

// Days is the window length in days.
func (t TimeRange) Days() int {
	switch t {
	case RangeWeek:
		return 7
	case RangeQuarter:
		return 90
	case RangeYear:
		return 365
	default:
		return 30
	}
}

// BucketLabel names the i-th (1-based) chart bucket for the range.
func (t TimeRange) BucketLabel(i int) string {
	switch t {
	case RangeWeek:
		return fmt.Sprintf("Day %d", i)
	case RangeQuarter:
		return fmt.Sprintf("Month %d", i)
	case RangeYear:
		return fmt.Sprintf("Q %d", i)
	default:
		return fmt.Sprintf("Week %d", i)
	}
}
