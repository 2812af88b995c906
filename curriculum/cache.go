package curriculum

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

const techniquesKey = "techniques"

// Cached keeps the last successful fetch of a source for a TTL.
type Cached struct {
	src   Source
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewCached wraps src. A zero ttl keeps entries until evicted.
func NewCached(src Source, ttl time.Duration) (*Cached, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 16,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create technique cache: %w", err)
	}
	return &Cached{src: src, cache: cache, ttl: ttl}, nil
}

func (c *Cached) Techniques(ctx context.Context) ([]Technique, error) {
	if v, ok := c.cache.Get(techniquesKey); ok {
		if list, ok := v.([]Technique); ok {
			return append([]Technique(nil), list...), nil
		}
	}

	list, err := c.src.Techniques(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetWithTTL(techniquesKey, list, int64(len(list))+1, c.ttl)
	c.cache.Wait()
	return append([]Technique(nil), list...), nil
}

// Skipped forwards the wrapped source's count of dropped entries.
func (c *Cached) Skipped() int {
	if sk, ok := c.src.(Skipper); ok {
		return sk.Skipped()
	}
	return 0
}

// Invalidate drops the cached list so the next call refetches.
func (c *Cached) Invalidate() {
	c.cache.Del(techniquesKey)
}

func (c *Cached) Close() {
	c.cache.Close()
}
