package normalize

import (
	"strings"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
)

// Closed status set. Anything else lands in StatusUnknown so unrecognized
// values stay visible in counts instead of silently vanishing.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusUnknown   = "unknown"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultDurationMinutes is assumed when a record carries no duration.
const DefaultDurationMinutes = 120

// Booking is a raw booking with every nullable field resolved to a concrete
// default and status/priority mapped into their closed sets.
type Booking struct {
	ID              string     `json:"id"`
	HallID          string     `json:"hall_id"`
	UserID          string     `json:"user_id"`
	Date            Date       `json:"date"` // zero when the date string was malformed
	DateErr         error      `json:"-"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	RawStatus       string     `json:"raw_status"` // as stored, for the unknown bucket
	Priority        string     `json:"priority"`
	Equipment       []string   `json:"equipment"`
	AttendeeCount   int        `json:"attendee_count"`
	Purpose         string     `json:"purpose"`
	Description     string     `json:"description"`
	SpecialReqs     string     `json:"special_requirements"`
	ApprovedBy      string     `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FromRaw normalizes a single raw booking record. It never fails: a
// malformed date is recorded on the result (and the zero Date excluded from
// date-bucketed aggregates) while the record itself stays countable.
func FromRaw(raw *bookings.Booking) Booking {
	b := Booking{
		ID:              raw.ID,
		HallID:          raw.HallID,
		UserID:          raw.UserID,
		StartTime:       strings.TrimSpace(raw.StartTime),
		EndTime:         strings.TrimSpace(raw.EndTime),
		DurationMinutes: DefaultDurationMinutes,
		Purpose:         raw.Purpose,
		Equipment:       raw.Equipment,
		AttendeeCount:   0,
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.UpdatedAt,
	}
	if b.Equipment == nil {
		b.Equipment = []string{}
	}
	if raw.DurationMinutes != nil && *raw.DurationMinutes > 0 {
		b.DurationMinutes = *raw.DurationMinutes
	}
	if raw.AttendeeCount != nil && *raw.AttendeeCount > 0 {
		b.AttendeeCount = *raw.AttendeeCount
	}
	if raw.Description != nil {
		b.Description = *raw.Description
	}
	if raw.SpecialRequirements != nil {
		b.SpecialReqs = *raw.SpecialRequirements
	}
	if raw.ApprovedBy != nil {
		b.ApprovedBy = *raw.ApprovedBy
	}
	if raw.RejectionReason != nil {
		b.RejectionReason = *raw.RejectionReason
	}
	b.ApprovedAt = raw.ApprovedAt

	b.RawStatus = strings.ToLower(strings.TrimSpace(raw.Status))
	b.Status = Status(b.RawStatus)

	pr := ""
	if raw.Priority != nil {
		pr = *raw.Priority
	}
	b.Priority = Priority(pr)

	if d, err := ParseDate(raw.BookingDate); err != nil {
		b.DateErr = err
	} else {
		b.Date = d
	}
	return b
}

// Status maps a raw status value into the closed set.
func Status(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return StatusUnknown
	}
}

// Priority maps a raw priority value into the closed set, defaulting medium.
func Priority(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// DurationHours is the derived duration in hours, never negative.
func (b Booking) DurationHours() float64 {
	if b.DurationMinutes <= 0 {
		return float64(DefaultDurationMinutes) / 60
	}
	return float64(b.DurationMinutes) / 60
}
