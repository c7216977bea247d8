// Package analytics computes dashboard statistics, trends and chart buckets
// from enriched booking records. Every function here is pure: callers supply
// "now" explicitly and identical inputs always produce identical output.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/normalize"
)

// Utilization assumptions: each active hall is bookable this many hours per
// day, measured over a 30-day window.
const (
	AssumedDailyHours    = 12
	UtilizationWindowDay = 30
)

// Defaults reported on empty input.
const (
	DefaultPeakHour = "09:00"
	DefaultPeakDay  = "Monday"
	NoBookingsHall  = "No bookings"
)

type UserCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ApprovedBookings  int `json:"approved_bookings"`
	RejectedBookings  int `json:"rejected_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	UnknownStatus     int `json:"unknown_status_bookings"`

	// ActiveBookings is the broader dashboard definition: approved plus any
	// record whose raw status is "confirmed" (a legacy value that normalizes
	// to the unknown bucket). ApprovedBookings is the strict legacy
	// definition. Both are used depending on the caller; this is a policy
	// choice, not a bug.
	ActiveBookings int `json:"active_bookings"`

	TodayBookings    int `json:"today_bookings"`
	TomorrowBookings int `json:"tomorrow_bookings"`
	WeekBookings     int `json:"week_bookings"`
	MonthBookings    int `json:"month_bookings"`

	AverageDurationHours float64     `json:"average_duration_hours"`
	PeakHour             string      `json:"peak_hour"`
	PeakDay              string      `json:"peak_day"`
	MostBookedHall       string      `json:"most_booked_hall"`
	LeastBookedHall      string      `json:"least_booked_hall"`
	TopUsers             []UserCount `json:"top_users"`
	UtilizationRate      float64     `json:"utilization_rate"`
	Trend                string      `json:"trend"`
}

// ComputeDashboardStats aggregates enriched bookings into a dashboard
// snapshot. hallCount is the number of active halls in the system (needed
// for utilization); now anchors every date-scoped count. Records whose date
// could not be parsed stay in status counts but are skipped by date buckets.
func ComputeDashboardStats(list []enrich.Booking, hallCount int, now time.Time) DashboardStats {
	s := DashboardStats{
		PeakHour:        DefaultPeakHour,
		PeakDay:         DefaultPeakDay,
		MostBookedHall:  NoBookingsHall,
		LeastBookedHall: NoBookingsHall,
		TopUsers:        []UserCount{},
		Trend:           TrendStable,
	}
	s.TotalBookings = len(list)
	if hallCount < 0 {
		hallCount = 0
	}

	today := normalize.DateOf(now)
	tomorrow := normalize.DateOf(now.AddDate(0, 0, 1))
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var (
		durationSum   float64
		approvedHours float64
		hourCounts    = map[int]int{}
		dayCounts     = map[time.Weekday]int{}
		hallCounts    = map[string]int{}
		hallOrder     []string
		userCounts    = map[string]int{}
		userNames     = map[string]string{}
	)

	for _, b := range list {
		switch b.Status {
		case normalize.StatusPending:
			s.PendingBookings++
		case normalize.StatusApproved:
			s.ApprovedBookings++
		case normalize.StatusRejected:
			s.RejectedBookings++
		case normalize.StatusCancelled:
			s.CancelledBookings++
		case normalize.StatusCompleted:
			s.CompletedBookings++
		default:
			s.UnknownStatus++
		}
		if b.Status == normalize.StatusApproved || b.RawStatus == "confirmed" {
			s.ActiveBookings++
		}
		if b.Status == normalize.StatusApproved {
			approvedHours += b.DurationHours()
		}

		durationSum += b.DurationHours()

		if !b.Date.IsZero() {
			if b.Date.Equal(today) {
				s.TodayBookings++
			}
			if b.Date.Equal(tomorrow) {
				s.TomorrowBookings++
			}
			dt := b.Date.Time(now.Location())
			if !dt.Before(weekStart) && dt.Before(weekEnd) {
				s.WeekBookings++
			}
			if b.Date.Year == today.Year && b.Date.Month == today.Month {
				s.MonthBookings++
			}
			dayCounts[b.Date.Weekday()]++
		}

		if h, ok := startHour(b.StartTime); ok {
			hourCounts[h]++
		}

		if b.HallResolved {
			if _, seen := hallCounts[b.HallName]; !seen {
				hallOrder = append(hallOrder, b.HallName)
			}
			hallCounts[b.HallName]++
		}

		userCounts[b.UserID]++
		if userNames[b.UserID] == "" {
			userNames[b.UserID] = b.UserName
		}
	}

	if s.TotalBookings > 0 {
		s.AverageDurationHours = durationSum / float64(s.TotalBookings)
	}

	if len(hourCounts) > 0 {
		best, bestCount := 0, -1
		for h := 0; h < 24; h++ {
			if c := hourCounts[h]; c > bestCount {
				best, bestCount = h, c
			}
		}
		s.PeakHour = fmt.Sprintf("%02d:00", best)
	}

	if len(dayCounts) > 0 {
		best, bestCount := time.Sunday, -1
		for d := time.Sunday; d <= time.Saturday; d++ {
			if c := dayCounts[d]; c > bestCount {
				best, bestCount = d, c
			}
		}
		s.PeakDay = best.String()
	}

	if len(hallOrder) > 0 {
		most, least := hallOrder[0], hallOrder[0]
		for _, name := range hallOrder {
			if hallCounts[name] > hallCounts[most] {
				most = name
			}
			if hallCounts[name] < hallCounts[least] {
				least = name
			}
		}
		s.MostBookedHall = most
		s.LeastBookedHall = least
	}

	s.TopUsers = topUsers(userCounts, userNames, 5)
	s.UtilizationRate = UtilizationRate(approvedHours, hallCount, UtilizationWindowDay)
	s.Trend = ClassifyTrend(list, now, 7)
	return s
}

// UtilizationRate is booked hours over theoretically available hours as a
// percentage, clamped to [0, 100]. Synthetic inputs can push the raw ratio
// past 100, hence the clamp.
func UtilizationRate(approvedHours float64, hallCount, windowDays int) float64 {
	if approvedHours <= 0 || hallCount <= 0 || windowDays <= 0 {
		return 0
	}
	available := float64(hallCount) * AssumedDailyHours * float64(windowDays)
	rate := approvedHours / available * 100
	if rate > 100 {
		return 100
	}
	if rate < 0 {
		return 0
	}
	return rate
}

func topUsers(counts map[string]int, names map[string]string, n int) []UserCount {
	out := make([]UserCount, 0, len(counts))
	for id, c := range counts {
		name := names[id]
		if name == "" {
			name = id
		}
		out = append(out, UserCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// startOfWeek is midnight of the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// startHour extracts the HH component of an HH:MM string.
func startHour(s string) (int, bool) {
	if len(s) < 2 {
		return 0, false
	}
	h := 0
	for i := 0; i < 2; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		h = h*10 + int(s[i]-'0')
	}
	if h > 23 {
		return 0, false
	}
	return h, true
}
