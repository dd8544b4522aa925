package nominatim

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/crimewatch/report-service/internal/domain"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache keyed by
// coordinates. Citizens reporting from the same block resolve to the same
// address, so repeated lookups are common.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *lruCache
	lookups *prometheus.CounterVec // label: result={hit,miss}; may be nil
}

// NewCachedGeocoder creates a cache decorator around a geocoder. The
// lookups counter is optional; pass nil to skip cache metrics.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, lookups *prometheus.CounterVec) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		lookups: lookups,
	}
}

func (c *CachedGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	key := fmt.Sprintf("%.6f,%.6f", lat, lon)
	if address, ok := c.cache.get(key); ok {
		c.count("hit")
		return address, nil
	}
	c.count("miss")

	address, err := c.inner.Reverse(ctx, lat, lon)
	if err != nil {
		return "", err
	}
	// Only cache non-empty results so transient "not found" responses can be retried.
	if address != "" {
		c.cache.put(key, address)
	}
	return address, nil
}

func (c *CachedGeocoder) count(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache of resolved addresses.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value string
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
