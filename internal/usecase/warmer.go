package usecase

import (
	"context"

	drepo "CapSwap/internal/domain/repository"
	applogger "CapSwap/pkg/logger"
)

// CacheWarmer populates the ticker cache. Population is fire-and-forget: it
// must never fail the process; on any provider failure it logs, leaves the
// previous cache contents untouched, and the search path degrades to the
// live fallback.
type CacheWarmer struct {
	provider drepo.QuoteProvider
	store    drepo.TickerStore
	snapshot drepo.SnapshotStore // optional, may be nil
	limit    int
	logger   *applogger.Logger
}

func NewCacheWarmer(provider drepo.QuoteProvider, store drepo.TickerStore, snapshot drepo.SnapshotStore, limit int, logger *applogger.Logger) *CacheWarmer {
	return &CacheWarmer{
		provider: provider,
		store:    store,
		snapshot: snapshot,
		limit:    limit,
		logger:   logger,
	}
}

// Warm seeds the cache. When a snapshot store is configured it is consulted
// first, so a restarted process serves cached search immediately; the
// authoritative upstream list then overwrites it.
func (w *CacheWarmer) Warm(ctx context.Context) {
	if w.snapshot != nil && !w.store.Ready() {
		if records, err := w.snapshot.Load(ctx); err == nil && len(records) > 0 {
			w.store.Replace(records)
			w.logger.Info("ticker cache seeded from snapshot", applogger.Int("tickers", len(records)))
		}
	}
	w.Refresh(ctx)
}

// Refresh downloads the ticker list and replaces the cache wholesale.
func (w *CacheWarmer) Refresh(ctx context.Context) {
	records, err := w.provider.ListTickers(ctx, w.limit)
	if err != nil {
		w.logger.Error("ticker cache population failed, live search fallback stays active", applogger.Error(err))
		return
	}
	if len(records) == 0 {
		w.logger.Warn("ticker list came back empty, keeping previous cache")
		return
	}

	w.store.Replace(records)
	w.logger.Info("ticker cache populated", applogger.Int("tickers", len(records)))

	if w.snapshot != nil {
		if err := w.snapshot.Save(ctx, records); err != nil {
			w.logger.Warn("ticker snapshot save failed", applogger.Error(err))
		}
	}
}
