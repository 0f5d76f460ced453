package di

import (
	drepo "CapSwap/internal/domain/repository"
	"CapSwap/internal/handler/api"
	internalrepo "CapSwap/internal/repository"
	"CapSwap/internal/service/brapi"
	"CapSwap/internal/usecase"
	pkgcache "CapSwap/pkg/cache"
	"CapSwap/pkg/config"
	applogger "CapSwap/pkg/logger"
	"CapSwap/pkg/metrics"
	"CapSwap/pkg/server"
)

// ProvideLogger creates the structured application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideQuoteProvider creates the brapi upstream client.
func ProvideQuoteProvider(cfg *config.Config, m drepo.Metrics) drepo.QuoteProvider {
	return brapi.New(cfg.Brapi.BaseURL, cfg.Brapi.Token, cfg.Brapi.Timeout, m)
}

// ProvideTickerStore creates the in-memory ticker cache.
func ProvideTickerStore(m drepo.Metrics) drepo.TickerStore {
	return internalrepo.NewTickerCache(m)
}

// ProvideSnapshotStore creates the optional Redis-backed ticker snapshot.
// It is a warm-start aid only, so a Redis failure degrades to nil instead of
// failing startup.
func ProvideSnapshotStore(cfg *config.Config, logger *applogger.Logger) drepo.SnapshotStore {
	if !cfg.Cache.Snapshot.Enabled {
		return nil
	}

	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisAddr(cfg.Redis.Addr),
		pkgcache.WithRedisPassword(cfg.Redis.Password),
		pkgcache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		logger.Warn("redis unavailable, ticker snapshot disabled", applogger.Error(err))
		return nil
	}
	return internalrepo.NewTickerSnapshot(rc, cfg.Cache.Snapshot.Key, cfg.Cache.Snapshot.TTL)
}

// ProvideWarmer creates the cache warmer.
func ProvideWarmer(provider drepo.QuoteProvider, store drepo.TickerStore, snapshot drepo.SnapshotStore, cfg *config.Config, logger *applogger.Logger) *usecase.CacheWarmer {
	return usecase.NewCacheWarmer(provider, store, snapshot, cfg.Brapi.ListLimit, logger)
}

// ProvideSearchService creates the search use case.
func ProvideSearchService(store drepo.TickerStore, provider drepo.QuoteProvider, m drepo.Metrics, logger *applogger.Logger) *usecase.SearchService {
	return usecase.NewSearchService(store, provider, m, logger)
}

// ProvideCompareService creates the comparison use case.
func ProvideCompareService(provider drepo.QuoteProvider, m drepo.Metrics, logger *applogger.Logger) *usecase.CompareService {
	return usecase.NewCompareService(provider, m, logger)
}

// ProvideHandler creates the HTTP handler for both endpoints.
func ProvideHandler(logger *applogger.Logger, search *usecase.SearchService, compare *usecase.CompareService, store drepo.TickerStore) *api.QuotesHandler {
	return api.NewQuotesHandler(logger, search, compare, store)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, warmer *usecase.CacheWarmer, handler *api.QuotesHandler) *server.App {
	return server.New(cfg, logger, warmer, handler)
}
