package redisx

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const snapshotKey = "dashboard:snapshot"

// SnapshotCache stores the serialized dashboard snapshot with a TTL. The
// worker invalidates it when booking-change events arrive so the API serves
// fresh numbers without recomputing on every request.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(addr string, ttl time.Duration) *SnapshotCache {
	c := redis.NewClient(&redis.Options{Addr: addr})
	return &SnapshotCache{client: c, ttl: ttl}
}

// Get returns the cached snapshot JSON, or ok=false on a miss.
func (s *SnapshotCache) Get(ctx context.Context) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Set stores the snapshot JSON with the configured TTL.
func (s *SnapshotCache) Set(ctx context.Context, payload []byte) error {
	return s.client.Set(ctx, snapshotKey, payload, s.ttl).Err()
}

// Invalidate drops the cached snapshot.
func (s *SnapshotCache) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, snapshotKey).Err()
}

func (s *SnapshotCache) Close() { _ = s.client.Close() }

// GetClient returns the underlying Redis client for middleware use.
func (s *SnapshotCache) GetClient() *redis.Client {
	return s.client
}
