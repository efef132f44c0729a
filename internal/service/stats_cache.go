package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/flightsearch/flightsearch/models"
)

// statsCacheKey is the only key ever stored: the snapshot is process-wide,
// not per-user and not per-query.
const statsCacheKey = "daily"

// StatsCache holds the popular-query snapshot for a bounded time. It is an
// explicitly owned, injected component (no package-level state) so tests can
// construct an isolated instance per case. Its lifetime equals the service
// process; entries are invalidated purely by the TTL.
type StatsCache struct {
	entries *expirable.LRU[string, models.PopularStats]
}

// NewStatsCache constructs a cache whose single snapshot expires ttl after
// it was stored.
func NewStatsCache(ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &StatsCache{
		entries: expirable.NewLRU[string, models.PopularStats](1, nil, ttl),
	}
}

// Get returns the cached snapshot and whether a live one exists.
func (c *StatsCache) Get() (models.PopularStats, bool) {
	return c.entries.Get(statsCacheKey)
}

// Set stores a fresh snapshot, restarting the TTL window.
func (c *StatsCache) Set(stats models.PopularStats) {
	c.entries.Add(statsCacheKey, stats)
}
