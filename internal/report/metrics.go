// Package report builds a complete report snapshot from raw record sets and
// serializes it to the two supported export formats. The exporters are pure
// string producers; writing bytes anywhere is the caller's concern.
package report

import (
	"sort"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/normalize"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

type HallCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Metrics is a completed report snapshot. It has no persisted identity: it
// is computed fresh per call and handed to an exporter or the API once.
type Metrics struct {
	GeneratedAt time.Time           `json:"generated_at"`
	TimeRange   analytics.TimeRange `json:"time_range"`
	RangeStart  time.Time           `json:"range_start"`
	RangeEnd    time.Time           `json:"range_end"`

	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ApprovedBookings  int `json:"approved_bookings"`
	RejectedBookings  int `json:"rejected_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	UnknownStatus     int `json:"unknown_status_bookings"`

	ApprovalRate         float64 `json:"approval_rate"`
	CancellationRate     float64 `json:"cancellation_rate"`
	AverageDurationHours float64 `json:"average_duration_hours"`
	UtilizationRate      float64 `json:"utilization_rate"`
	PeakHour             string  `json:"peak_hour"`
	PeakDay              string  `json:"peak_day"`
	Trend                string  `json:"trend"`

	PopularHalls []HallCount              `json:"popular_halls"`
	TopUsers     []analytics.UserCount    `json:"top_users"`
	Periods      []analytics.PeriodBucket `json:"periods"`

	UnresolvedHalls int `json:"unresolved_halls"`
	UnresolvedUsers int `json:"unresolved_users"`

	Detailed []enrich.Booking `json:"detailed"`
}

// Compute enriches the three record sets and aggregates them into a report
// snapshot for the given window ending at now.
func Compute(raw []*bookings.Booking, hallList []*halls.Hall, userList []*users.UserProfile, timeRange analytics.TimeRange, now time.Time) Metrics {
	res := enrich.Resolve(raw, hallList, userList)
	stats := analytics.ComputeDashboardStats(res.Bookings, len(hallList), now)

	m := Metrics{
		GeneratedAt: now,
		TimeRange:   timeRange,
		RangeStart:  now.AddDate(0, 0, -timeRange.Days()),
		RangeEnd:    now,

		TotalBookings:     stats.TotalBookings,
		PendingBookings:   stats.PendingBookings,
		ApprovedBookings:  stats.ApprovedBookings,
		RejectedBookings:  stats.RejectedBookings,
		CancelledBookings: stats.CancelledBookings,
		CompletedBookings: stats.CompletedBookings,
		UnknownStatus:     stats.UnknownStatus,

		AverageDurationHours: stats.AverageDurationHours,
		UtilizationRate:      stats.UtilizationRate,
		PeakHour:             stats.PeakHour,
		PeakDay:              stats.PeakDay,
		Trend:                stats.Trend,

		TopUsers: stats.TopUsers,
		Periods:  analytics.BucketPeriods(res.Bookings, timeRange, now),

		UnresolvedHalls: res.UnresolvedHalls,
		UnresolvedUsers: res.UnresolvedUsers,

		Detailed: res.Bookings,
	}
	m.ApprovalRate = rate(stats.ApprovedBookings, stats.TotalBookings)
	m.CancellationRate = rate(stats.CancelledBookings+stats.RejectedBookings, stats.TotalBookings)
	m.PopularHalls = popularHalls(res.Bookings)
	return m
}

// rate is part/total as a percentage bounded to [0, 100], 0 on empty input.
func rate(part, total int) float64 {
	if total <= 0 || part <= 0 {
		return 0
	}
	r := float64(part) / float64(total) * 100
	if r > 100 {
		return 100
	}
	return r
}

func popularHalls(list []enrich.Booking) []HallCount {
	counts := map[string]int{}
	for _, b := range list {
		if b.HallResolved {
			counts[b.HallName]++
		}
	}
	out := make([]HallCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, HallCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// statusLabel renders the stored status for detail rows, surfacing the raw
// value for records in the unknown bucket so nothing silently vanishes.
func statusLabel(b enrich.Booking) string {
	if b.Status == normalize.StatusUnknown && b.RawStatus != "" {
		return "unknown (" + b.RawStatus + ")"
	}
	return b.Status
}
