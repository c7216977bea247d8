package enrich

import (
	"reflect"
	"testing"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

func rawBooking(id, hallID, userID string) *bookings.Booking {
	return &bookings.Booking{ID: id, HallID: hallID, UserID: userID, BookingDate: "2025-07-15", Status: "approved"}
}

func TestRefsDeduplicates(t *testing.T) {
	raw := []*bookings.Booking{
		rawBooking("b1", "h1", "u1"),
		rawBooking("b2", "h1", "u2"),
		rawBooking("b3", "h2", "u1"),
		rawBooking("b4", "", ""),
	}

	hallIDs, userIDs := Refs(raw)
	if want := []string{"h1", "h2"}; !reflect.DeepEqual(hallIDs, want) {
		t.Errorf("hallIDs = %v, want %v", hallIDs, want)
	}
	if want := []string{"u1", "u2"}; !reflect.DeepEqual(userIDs, want) {
		t.Errorf("userIDs = %v, want %v", userIDs, want)
	}
}

func TestResolve(t *testing.T) {
	raw := []*bookings.Booking{
		rawBooking("b1", "h1", "u1"),
		rawBooking("b2", "h-deleted", "u1"),
		rawBooking("b3", "h1", "u-deleted"),
	}
	hallList := []*halls.Hall{
		{ID: "h1", Name: "Main Auditorium", Capacity: 200, Location: "Block A", Type: "auditorium"},
	}
	dept := "Physics"
	userList := []*users.UserProfile{
		{ID: "u1", Name: "Asha Rao", Email: "asha@campus.edu", Department: &dept},
	}

	res := Resolve(raw, hallList, userList)
	if len(res.Bookings) != 3 {
		t.Fatalf("got %d enriched bookings, want 3: resolution must never drop records", len(res.Bookings))
	}

	b1 := res.Bookings[0]
	if b1.HallName != "Main Auditorium" || !b1.HallResolved {
		t.Errorf("b1 hall = %q resolved=%v, want Main Auditorium resolved", b1.HallName, b1.HallResolved)
	}
	if b1.UserName != "Asha Rao" || b1.UserDepartment != "Physics" {
		t.Errorf("b1 user = %q dept=%q, want Asha Rao / Physics", b1.UserName, b1.UserDepartment)
	}

	b2 := res.Bookings[1]
	if b2.HallName != UnknownHall || b2.HallResolved {
		t.Errorf("b2 hall = %q resolved=%v, want placeholder %q", b2.HallName, b2.HallResolved, UnknownHall)
	}

	b3 := res.Bookings[2]
	if b3.UserName != UnknownUser || b3.UserResolved {
		t.Errorf("b3 user = %q resolved=%v, want placeholder %q", b3.UserName, b3.UserResolved, UnknownUser)
	}

	if res.UnresolvedHalls != 1 || res.UnresolvedUsers != 1 {
		t.Errorf("unresolved halls=%d users=%d, want 1 and 1", res.UnresolvedHalls, res.UnresolvedUsers)
	}
}

func TestResolveEmptyLookupTables(t *testing.T) {
	raw := []*bookings.Booking{rawBooking("b1", "h1", "u1")}
	res := Resolve(raw, nil, nil)
	if len(res.Bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(res.Bookings))
	}
	b := res.Bookings[0]
	if b.HallName != UnknownHall || b.UserName != UnknownUser || b.UserEmail != UnknownEmail {
		t.Errorf("placeholders not applied: hall=%q user=%q email=%q", b.HallName, b.UserName, b.UserEmail)
	}
}
