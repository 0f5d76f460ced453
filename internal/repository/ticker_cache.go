package repository

import (
	"sync/atomic"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
)

// TickerCache is the process-wide ticker list. There is exactly one writer
// (the warmer) and arbitrarily many concurrent readers; contents are replaced
// wholesale through an atomic pointer swap, so readers never observe a
// half-populated list and no locking is needed.
type TickerCache struct {
	records atomic.Pointer[[]models.TickerRecord]
	metrics drepo.Metrics
}

// NewTickerCache creates an empty cache. Empty means "unavailable", not
// "no matches"; callers check Ready before filtering.
func NewTickerCache(metrics drepo.Metrics) *TickerCache {
	c := &TickerCache{metrics: metrics}
	empty := make([]models.TickerRecord, 0)
	c.records.Store(&empty)
	return c
}

// Replace swaps the cache contents atomically. The caller hands over
// ownership of the slice and must not mutate it afterwards.
func (c *TickerCache) Replace(records []models.TickerRecord) {
	c.records.Store(&records)
	if c.metrics != nil {
		c.metrics.SetTickerCacheSize(len(records))
	}
}

// All returns the current ticker list in provider order (volume-descending).
func (c *TickerCache) All() []models.TickerRecord {
	return *c.records.Load()
}

// Ready reports whether the cache holds at least one record.
func (c *TickerCache) Ready() bool {
	return c.Len() > 0
}

// Len returns the number of cached records.
func (c *TickerCache) Len() int {
	return len(*c.records.Load())
}
