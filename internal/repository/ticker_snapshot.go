package repository

import (
	"context"
	"time"

	"CapSwap/internal/domain/models"
	"CapSwap/pkg/cache"
)

// TickerSnapshot keeps a copy of the last successful ticker list in Redis.
// It only exists to warm the in-memory cache faster after a restart; the
// upstream list remains the source of truth and overwrites it on every
// successful population.
type TickerSnapshot struct {
	cache cache.Service
	key   string
	ttl   time.Duration
}

func NewTickerSnapshot(c cache.Service, key string, ttl time.Duration) *TickerSnapshot {
	return &TickerSnapshot{cache: c, key: key, ttl: ttl}
}

// Save stores the ticker list under the snapshot key.
func (s *TickerSnapshot) Save(ctx context.Context, records []models.TickerRecord) error {
	return s.cache.Set(ctx, s.key, records, s.ttl)
}

// Load returns the stored ticker list, or cache.ErrCacheMiss if none exists.
func (s *TickerSnapshot) Load(ctx context.Context) ([]models.TickerRecord, error) {
	var records []models.TickerRecord
	if err := s.cache.Get(ctx, s.key, &records); err != nil {
		return nil, err
	}
	return records, nil
}
