package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/metrics"
	redisx "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/redis"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/records"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
)

type DashboardService struct {
	log     *zap.Logger
	fetcher *records.Fetcher
	cache   *redisx.SnapshotCache
}

func NewDashboardService(log *zap.Logger, fetcher *records.Fetcher, cache *redisx.SnapshotCache) *DashboardService {
	return &DashboardService{log: log, fetcher: fetcher, cache: cache}
}

// Stats returns the dashboard snapshot, serving the cached copy unless the
// caller forces a refresh. The aggregation itself is pure; only the fetch
// can fail.
func (s *DashboardService) Stats(ctx context.Context, forceRefresh bool) (analytics.DashboardStats, error) {
	if s.cache != nil && !forceRefresh {
		if payload, ok, err := s.cache.Get(ctx); err == nil && ok {
			var cached analytics.DashboardStats
			if json.Unmarshal(payload, &cached) == nil {
				metrics.SnapshotCacheHits.WithLabelValues("hit").Inc()
				return cached, nil
			}
		}
		metrics.SnapshotCacheHits.WithLabelValues("miss").Inc()
	}

	stats, err := s.Compute(ctx, time.Now())
	if err != nil {
		return analytics.DashboardStats{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, payload); err != nil {
				s.log.Warn("snapshot cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// Compute fetches the record sets and aggregates them against the supplied
// now, bypassing the cache. The worker uses this directly when refreshing.
func (s *DashboardService) Compute(ctx context.Context, now time.Time) (analytics.DashboardStats, error) {
	sets, err := s.fetcher.FetchAll(ctx, bookings.Filter{})
	if err != nil {
		return analytics.DashboardStats{}, err
	}

	res := enrich.Resolve(sets.Bookings, sets.Halls, sets.Users)
	s.logSkips(res)

	return analytics.ComputeDashboardStats(res.Bookings, len(sets.Halls), now), nil
}

// RefreshCache recomputes the snapshot and replaces the cached copy.
func (s *DashboardService) RefreshCache(ctx context.Context) error {
	stats, err := s.Compute(ctx, time.Now())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, payload)
}

func (s *DashboardService) logSkips(res enrich.Result) {
	if res.UnresolvedHalls > 0 {
		metrics.SkippedRecordsTotal.WithLabelValues("unresolved_hall").Add(float64(res.UnresolvedHalls))
		s.log.Warn("bookings reference missing halls", zap.Int("count", res.UnresolvedHalls))
	}
	if res.UnresolvedUsers > 0 {
		metrics.SkippedRecordsTotal.WithLabelValues("unresolved_user").Add(float64(res.UnresolvedUsers))
		s.log.Warn("bookings reference missing users", zap.Int("count", res.UnresolvedUsers))
	}
	var badDates int
	for _, b := range res.Bookings {
		if b.DateErr != nil {
			badDates++
		}
	}
	if badDates > 0 {
		metrics.SkippedRecordsTotal.WithLabelValues("malformed_date").Add(float64(badDates))
		s.log.Warn("bookings with malformed dates excluded from date buckets", zap.Int("count", badDates))
	}
}
