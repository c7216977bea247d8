package normalize

import (
	"testing"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
)

func TestFromRawDefaults(t *testing.T) {
	raw := &bookings.Booking{
		ID:          "b1",
		HallID:      "h1",
		UserID:      "u1",
		BookingDate: "2025-07-15",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Status:      "approved",
		Purpose:     "Seminar",
		CreatedAt:   time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}

	b := FromRaw(raw)
	if b.DurationMinutes != DefaultDurationMinutes {
		t.Errorf("DurationMinutes = %d, want default %d", b.DurationMinutes, DefaultDurationMinutes)
	}
	if b.AttendeeCount != 0 {
		t.Errorf("AttendeeCount = %d, want 0", b.AttendeeCount)
	}
	if b.Equipment == nil || len(b.Equipment) != 0 {
		t.Errorf("Equipment = %v, want empty non-nil slice", b.Equipment)
	}
	if b.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want medium", b.Priority)
	}
	if b.DateErr != nil {
		t.Errorf("DateErr = %v, want nil", b.DateErr)
	}
	if !b.Date.Equal(Date{2025, 7, 15}) {
		t.Errorf("Date = %v, want 2025-07-15", b.Date)
	}
}

func TestFromRawMalformedDateDoesNotFail(t *testing.T) {
	raw := &bookings.Booking{ID: "b1", BookingDate: "32139999", Status: "pending"}
	b := FromRaw(raw)
	if b.DateErr == nil {
		t.Fatal("expected DateErr for malformed date")
	}
	if !b.Date.IsZero() {
		t.Errorf("Date = %v, want zero", b.Date)
	}
	if b.Status != StatusPending {
		t.Errorf("Status = %q, want pending: record must stay countable", b.Status)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"approved", StatusApproved},
		{"APPROVED", StatusApproved},
		{" pending ", StatusPending},
		{"rejected", StatusRejected},
		{"cancelled", StatusCancelled},
		{"completed", StatusCompleted},
		{"confirmed", StatusUnknown},
		{"", StatusUnknown},
		{"weird", StatusUnknown},
	}
	for _, tt := range tests {
		if got := Status(tt.in); got != tt.want {
			t.Errorf("Status(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriorityMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"low", PriorityLow},
		{"high", PriorityHigh},
		{"medium", PriorityMedium},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}
	for _, tt := range tests {
		if got := Priority(tt.in); got != tt.want {
			t.Errorf("Priority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationHours(t *testing.T) {
	ninety := 90
	raw := &bookings.Booking{ID: "b1", BookingDate: "2025-07-15", DurationMinutes: &ninety}
	b := FromRaw(raw)
	if got := b.DurationHours(); got != 1.5 {
		t.Errorf("DurationHours() = %v, want 1.5", got)
	}

	zero := 0
	raw.DurationMinutes = &zero
	b = FromRaw(raw)
	if got := b.DurationHours(); got != 2.0 {
		t.Errorf("DurationHours() with zero stored duration = %v, want default 2.0", got)
	}
}
