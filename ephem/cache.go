package ephem

import (
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/fauzisd/DailyQiblaObservation/geo"
)

// CachedProvider memoizes position queries. The alignment searches and
// the path sampler revisit the same instants; cached answers keep those
// repeat queries free.
type CachedProvider struct {
	inner Provider
	cache *lru.Cache // obsKey -> Observation
}

type obsKey struct {
	unixNano int64
	lat, lon float64
}

// Cached wraps a provider with an LRU of the given size.
func Cached(p Provider, size int) *CachedProvider {
	c, _ := lru.New(size)
	return &CachedProvider{inner: p, cache: c}
}

func (c *CachedProvider) Position(t time.Time, p geo.GeoPoint) (Observation, error) {
	k := obsKey{unixNano: t.UnixNano(), lat: p.Lat, lon: p.Lon}
	if v, ok := c.cache.Get(k); ok {
		return v.(Observation), nil
	}
	obs, err := c.inner.Position(t, p)
	if err != nil {
		return Observation{}, err
	}
	c.cache.Add(k, obs)
	return obs, nil
}
