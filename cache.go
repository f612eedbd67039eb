package transportwatcher

import (
	"fmt"
	"time"

	"github.com/bluele/gcache"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 10 * time.Minute
)

// RouteCache memoizes computed routes per coordinate pair and graph kind.
// Entries expire on their own; a weighted-graph rebuild purges everything
// since cached costs become stale.
type RouteCache struct {
	c gcache.Cache
}

func NewRouteCache(size int, ttl time.Duration) *RouteCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RouteCache{c: gcache.New(size).LRU().Expiration(ttl).Build()}
}

// routeKey quantizes coordinates to ~1m so that repeated queries from the
// same device hit the cache despite GPS jitter in the low decimals.
func routeKey(start, end Coordinates, graphType string) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f|%s",
		start.Latitude, start.Longitude, end.Latitude, end.Longitude, graphType)
}

func (rc *RouteCache) Get(key string) (*RouteResult, bool) {
	v, err := rc.c.Get(key)
	if err != nil {
		return nil, false
	}
	res, ok := v.(*RouteResult)
	return res, ok
}

func (rc *RouteCache) Set(key string, res *RouteResult) {
	_ = rc.c.Set(key, res)
}

func (rc *RouteCache) Purge() {
	rc.c.Purge()
}

func (rc *RouteCache) Len() int {
	return rc.c.Len(false)
}
