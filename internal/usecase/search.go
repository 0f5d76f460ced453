package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	xhttp "CapSwap/pkg/http"
	applogger "CapSwap/pkg/logger"
)

const (
	// minQueryLength gates every search: shorter queries return an empty
	// list without touching the cache or the provider.
	minQueryLength = 2
	maxSuggestions = 20
)

// searchStrategy is one way of answering a suggestion query. The query
// arrives trimmed and lowercased.
type searchStrategy interface {
	search(ctx context.Context, query string) ([]models.SearchSuggestion, error)
}

// SearchService answers autocomplete queries. The cache-backed strategy is
// used whenever the ticker list is populated; the live provider search is
// the fallback and the only path that can fail.
type SearchService struct {
	store   drepo.TickerStore
	cached  searchStrategy
	live    searchStrategy
	metrics drepo.Metrics
	logger  *applogger.Logger
}

func NewSearchService(store drepo.TickerStore, provider drepo.QuoteProvider, metrics drepo.Metrics, logger *applogger.Logger) *SearchService {
	return &SearchService{
		store:   store,
		cached:  &cacheSearch{store: store},
		live:    &liveSearch{provider: provider, limit: maxSuggestions},
		metrics: metrics,
		logger:  logger,
	}
}

func (s *SearchService) Search(ctx context.Context, query string) ([]models.SearchSuggestion, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minQueryLength {
		return []models.SearchSuggestion{}, nil
	}

	if s.store.Ready() {
		s.record("cache")
		return s.cached.search(ctx, q)
	}

	s.record("live")
	out, err := s.live.search(ctx, q)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("search_fallback")
		}
		s.logger.Error("live suggestion search failed", applogger.Error(err))
		return nil, xhttp.UpstreamUnavailableError("could not fetch suggestions").WithError(err)
	}
	return out, nil
}

func (s *SearchService) record(source string) {
	if s.metrics != nil {
		s.metrics.RecordSearch(source)
	}
}

// cacheSearch scans the in-memory ticker list. Matching preserves cache
// order, which is the provider's volume-descending sort.
type cacheSearch struct {
	store drepo.TickerStore
}

func (s *cacheSearch) search(_ context.Context, query string) ([]models.SearchSuggestion, error) {
	out := make([]models.SearchSuggestion, 0, maxSuggestions)
	for _, rec := range s.store.All() {
		if len(out) == maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(rec.Symbol), query) ||
			strings.Contains(strings.ToLower(rec.Name), query) {
			out = append(out, rec.Suggestion())
		}
	}
	return out, nil
}

// liveSearch asks the provider to filter, used only while the cache is empty.
type liveSearch struct {
	provider drepo.QuoteProvider
	limit    int
}

func (s *liveSearch) search(ctx context.Context, query string) ([]models.SearchSuggestion, error) {
	records, err := s.provider.SearchTickers(ctx, query, s.limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.SearchSuggestion, 0, len(records))
	for _, rec := range records {
		if len(out) == s.limit {
			break
		}
		out = append(out, rec.Suggestion())
	}
	return out, nil
}
