// Package enrich reconciles booking records against separately fetched hall
// and user records. The store cannot be trusted for relational joins, so the
// join happens here, in memory, against id-keyed maps. The lookup
// tables may be a strict subset of the ids bookings reference (a hall can be
// deleted after bookings pointed at it). A miss resolves to a placeholder
// and never fails the pipeline.
package enrich

import (
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/normalize"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

// Placeholder display values for unresolved references.
const (
	UnknownHall     = "Unknown Hall"
	UnknownLocation = "Unknown Location"
	UnknownUser     = "Unknown User"
	UnknownEmail    = "unknown@unknown"
)

// Booking is a normalized booking with hall and user display fields
// resolved by identifier lookup.
type Booking struct {
	normalize.Booking

	HallName     string `json:"hall_name"`
	HallCapacity int    `json:"hall_capacity"`
	HallLocation string `json:"hall_location"`
	HallType     string `json:"hall_type"`
	HallResolved bool   `json:"hall_resolved"`

	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	UserPhone      string `json:"user_phone"`
	UserDepartment string `json:"user_department"`
	UserResolved   bool   `json:"user_resolved"`
}

// Refs collects the distinct hall and user ids referenced by a set of raw
// bookings, in first-seen order. Deduplicating here bounds the batch lookups
// to O(unique halls + unique users).
func Refs(raw []*bookings.Booking) (hallIDs, userIDs []string) {
	seenHalls := make(map[string]struct{})
	seenUsers := make(map[string]struct{})
	for _, b := range raw {
		if b.HallID != "" {
			if _, ok := seenHalls[b.HallID]; !ok {
				seenHalls[b.HallID] = struct{}{}
				hallIDs = append(hallIDs, b.HallID)
			}
		}
		if b.UserID != "" {
			if _, ok := seenUsers[b.UserID]; !ok {
				seenUsers[b.UserID] = struct{}{}
				userIDs = append(userIDs, b.UserID)
			}
		}
	}
	return hallIDs, userIDs
}

// Result carries the enriched records plus counts of references that had to
// fall back to placeholders, for the caller to log.
type Result struct {
	Bookings        []Booking
	UnresolvedHalls int
	UnresolvedUsers int
}

// Resolve produces one enriched booking per raw booking. Lookups are exact
// id matches against the supplied record sets.
func Resolve(raw []*bookings.Booking, hallList []*halls.Hall, userList []*users.UserProfile) Result {
	hallByID := make(map[string]*halls.Hall, len(hallList))
	for _, h := range hallList {
		hallByID[h.ID] = h
	}
	userByID := make(map[string]*users.UserProfile, len(userList))
	for _, u := range userList {
		userByID[u.ID] = u
	}

	res := Result{Bookings: make([]Booking, 0, len(raw))}
	for _, r := range raw {
		e := Booking{Booking: normalize.FromRaw(r)}

		if h, ok := hallByID[r.HallID]; ok {
			e.HallName = h.Name
			e.HallCapacity = h.Capacity
			e.HallLocation = h.Location
			e.HallType = h.Type
			e.HallResolved = true
		} else {
			e.HallName = UnknownHall
			e.HallLocation = UnknownLocation
			res.UnresolvedHalls++
		}

		if u, ok := userByID[r.UserID]; ok {
			e.UserName = u.Name
			e.UserEmail = u.Email
			if u.Phone != nil {
				e.UserPhone = *u.Phone
			}
			if u.Department != nil {
				e.UserDepartment = *u.Department
			}
			e.UserResolved = true
		} else {
			e.UserName = UnknownUser
			e.UserEmail = UnknownEmail
			res.UnresolvedUsers++
		}

		res.Bookings = append(res.Bookings, e)
	}
	return res
}
