package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
)

// Booking is a raw booking row as stored. Nullable columns are pointers;
// defaults are applied later by the normalize package, not here.
type Booking struct {
	ID                  string     `json:"id"`
	HallID              string     `json:"hall_id"`
	UserID              string     `json:"user_id"`
	BookingDate         string     `json:"booking_date"` // ISO YYYY-MM-DD or compact DDMMYYYY
	StartTime           string     `json:"start_time"`   // HH:MM
	EndTime             string     `json:"end_time"`     // HH:MM
	DurationMinutes     *int       `json:"duration_minutes"`
	Status              string     `json:"status"`
	Priority            *string    `json:"priority"`
	Equipment           []string   `json:"equipment"`
	AttendeeCount       *int       `json:"attendee_count"`
	Purpose             string     `json:"purpose"`
	Description         *string    `json:"description"`
	SpecialRequirements *string    `json:"special_requirements"`
	ApprovedBy          *string    `json:"approved_by"`
	ApprovedAt          *time.Time `json:"approved_at"`
	RejectionReason     *string    `json:"rejection_reason"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Filter narrows the booking select. Every field is optional and each one
// maps to a single-column predicate; there is no join here on purpose.
type Filter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	HallID   string
}

type BookingsRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewBookingsRepository(db *store.DB, log *zap.Logger) *BookingsRepository {
	return &BookingsRepository{db: db, log: log}
}

const bookingColumns = `id, hall_id, user_id, booking_date, start_time, end_time,
	       duration_minutes, status, priority, equipment, attendee_count,
	       purpose, description, special_requirements,
	       approved_by, approved_at, rejection_reason, created_at, updated_at`

// List returns raw bookings matching the filter, unordered.
func (r *BookingsRepository) List(ctx context.Context, f Filter) ([]*Booking, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if f.HallID != "" {
		args = append(args, f.HallID)
		conds = append(conds, fmt.Sprintf("hall_id = $%d", len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b := &Booking{}
		err := rows.Scan(
			&b.ID, &b.HallID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
			&b.DurationMinutes, &b.Status, &b.Priority, &b.Equipment, &b.AttendeeCount,
			&b.Purpose, &b.Description, &b.SpecialRequirements,
			&b.ApprovedBy, &b.ApprovedAt, &b.RejectionReason, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
