package report

import (
	"testing"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

func TestCompute(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	raw := []*bookings.Booking{
		{ID: "b1", HallID: "h1", UserID: "u1", BookingDate: "2025-07-10", StartTime: "10:00", Status: "approved", CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "b2", HallID: "h1", UserID: "u2", BookingDate: "10072025", StartTime: "14:00", Status: "approved", CreatedAt: now.AddDate(0, 0, -4)},
		{ID: "b3", HallID: "h2", UserID: "u1", BookingDate: "2025-07-12", StartTime: "10:00", Status: "cancelled", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "b4", HallID: "h-gone", UserID: "u-gone", BookingDate: "2025-07-13", StartTime: "09:00", Status: "rejected", CreatedAt: now.AddDate(0, 0, -2)},
	}
	hallList := []*halls.Hall{
		{ID: "h1", Name: "Main Auditorium", Capacity: 200},
		{ID: "h2", Name: "Physics Hall", Capacity: 80},
	}
	userList := []*users.UserProfile{
		{ID: "u1", Name: "Asha Rao", Email: "asha@campus.edu"},
		{ID: "u2", Name: "Bilal Khan", Email: "bilal@campus.edu"},
	}

	m := Compute(raw, hallList, userList, analytics.RangeMonth, now)

	if m.TotalBookings != 4 {
		t.Errorf("TotalBookings = %d, want 4", m.TotalBookings)
	}
	if m.ApprovedBookings != 2 {
		t.Errorf("ApprovedBookings = %d, want 2", m.ApprovedBookings)
	}
	if m.ApprovalRate != 50 {
		t.Errorf("ApprovalRate = %v, want 50", m.ApprovalRate)
	}
	if m.CancellationRate != 50 {
		t.Errorf("CancellationRate = %v, want 50 (cancelled + rejected)", m.CancellationRate)
	}
	if len(m.PopularHalls) != 2 || m.PopularHalls[0].Name != "Main Auditorium" || m.PopularHalls[0].Count != 2 {
		t.Errorf("PopularHalls = %+v, want Main Auditorium first with 2", m.PopularHalls)
	}
	if m.UnresolvedHalls != 1 || m.UnresolvedUsers != 1 {
		t.Errorf("unresolved halls=%d users=%d, want 1 and 1", m.UnresolvedHalls, m.UnresolvedUsers)
	}
	if len(m.Detailed) != 4 {
		t.Errorf("Detailed = %d records, want 4", len(m.Detailed))
	}
	if len(m.Periods) != analytics.ChartBuckets {
		t.Errorf("Periods = %d buckets, want %d", len(m.Periods), analytics.ChartBuckets)
	}
	if m.RangeStart.After(m.RangeEnd) {
		t.Error("RangeStart after RangeEnd")
	}
}

func TestComputeEmpty(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	m := Compute(nil, nil, nil, analytics.RangeWeek, now)

	if m.TotalBookings != 0 {
		t.Errorf("TotalBookings = %d, want 0", m.TotalBookings)
	}
	if m.ApprovalRate != 0 || m.CancellationRate != 0 {
		t.Errorf("rates = %v/%v, want 0/0 on empty input", m.ApprovalRate, m.CancellationRate)
	}
	if m.PeakHour != "09:00" || m.PeakDay != "Monday" {
		t.Errorf("peaks = %q/%q, want defaults", m.PeakHour, m.PeakDay)
	}
	if m.Trend != analytics.TrendStable {
		t.Errorf("Trend = %q, want stable", m.Trend)
	}
	if len(m.PopularHalls) != 0 {
		t.Errorf("PopularHalls = %+v, want empty", m.PopularHalls)
	}
}

func TestComputeIdempotent(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	raw := []*bookings.Booking{
		{ID: "b1", HallID: "h1", UserID: "u1", BookingDate: "2025-07-10", StartTime: "10:00", Status: "approved", CreatedAt: now.AddDate(0, 0, -5)},
	}
	hallList := []*halls.Hall{{ID: "h1", Name: "Main Auditorium"}}

	first := ExportCSV(Compute(raw, hallList, nil, analytics.RangeMonth, now), "month")
	second := ExportCSV(Compute(raw, hallList, nil, analytics.RangeMonth, now), "month")
	if first != second {
		t.Error("two computations over identical inputs produced different documents")
	}
}
