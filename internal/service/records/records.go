// Package records fetches the three raw record sets from the store. The
// reads are independent, so they fan out concurrently and join before the
// resolver runs; any single fetch failure fails the whole call rather than
// producing a partially computed report.
package records

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/metrics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

type Fetcher struct {
	log      *zap.Logger
	bookings *bookings.BookingsRepository
	halls    *halls.HallsRepository
	users    *users.UsersRepository
}

func NewFetcher(log *zap.Logger, b *bookings.BookingsRepository, h *halls.HallsRepository, u *users.UsersRepository) *Fetcher {
	return &Fetcher{log: log, bookings: b, halls: h, users: u}
}

// Sets is one consistent read of the three record sets.
type Sets struct {
	Bookings []*bookings.Booking
	Halls    []*halls.Hall
	Users    []*users.UserProfile
}

// FetchAll reads bookings, halls and users concurrently. Halls and users are
// fetched unfiltered: the lookup tables are small and the resolver needs the
// full hall count for utilization anyway.
func (f *Fetcher) FetchAll(ctx context.Context, filter bookings.Filter) (Sets, error) {
	var sets Sets
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer observe("bookings", time.Now())
		var err error
		sets.Bookings, err = f.bookings.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		defer observe("halls", time.Now())
		var err error
		sets.Halls, err = f.halls.List(gctx, nil)
		return err
	})
	g.Go(func() error {
		defer observe("users", time.Now())
		var err error
		sets.Users, err = f.users.List(gctx, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return Sets{}, err
	}
	return sets, nil
}

// FetchScoped reads bookings first, then fetches only the halls and users
// those bookings reference, by deduplicated id batch. The two lookups are
// independent and run concurrently; both join before the caller resolves.
// Reports use this path: their hall/user interest is bounded by the window's
// bookings, not the whole campus.
func (f *Fetcher) FetchScoped(ctx context.Context, filter bookings.Filter) (Sets, error) {
	var sets Sets

	start := time.Now()
	var err error
	sets.Bookings, err = f.bookings.List(ctx, filter)
	observe("bookings", start)
	if err != nil {
		return Sets{}, err
	}

	hallIDs, userIDs := enrich.Refs(sets.Bookings)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer observe("halls", time.Now())
		var err error
		sets.Halls, err = f.halls.List(gctx, hallIDs)
		return err
	})
	g.Go(func() error {
		defer observe("users", time.Now())
		var err error
		sets.Users, err = f.users.List(gctx, userIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return Sets{}, err
	}
	return sets, nil
}

func observe(kind string, start time.Time) {
	metrics.RecordFetchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
