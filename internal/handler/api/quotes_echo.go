package api

import (
	"net/http"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	"CapSwap/internal/usecase"
	xhttp "CapSwap/pkg/http"
	applogger "CapSwap/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QuotesHandler exposes the search and comparison services over HTTP. Both
// endpoints are idempotent GETs; neither mutates shared state.
type QuotesHandler struct {
	logger  *applogger.Logger
	search  *usecase.SearchService
	compare *usecase.CompareService
	store   drepo.TickerStore
}

func NewQuotesHandler(logger *applogger.Logger, search *usecase.SearchService, compare *usecase.CompareService, store drepo.TickerStore) *QuotesHandler {
	return &QuotesHandler{logger: logger, search: search, compare: compare, store: store}
}

func (h *QuotesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/search", h.Search)
	g.GET("/compare", h.Compare)
	e.GET("/healthz", h.Health)
}

// Search returns autocomplete suggestions as a bare JSON array. A missing or
// short query is answered with an empty array, not an error.
func (h *QuotesHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	suggestions, err := h.search.Search(c.Request().Context(), req.Q)
	if err != nil {
		h.logger.Error("search failed", applogger.String("q", req.Q), applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, suggestions)
}

// Compare answers "what would A's share price be with B's market cap".
func (h *QuotesHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	result, err := h.compare.Compare(c.Request().Context(), req.TickerA, req.TickerB)
	if err != nil {
		h.logger.Error("compare failed",
			applogger.String("tickerA", req.TickerA),
			applogger.String("tickerB", req.TickerB),
			applogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

// Health reports process liveness and ticker cache readiness. The cache
// being empty is a degraded state, not a failure.
func (h *QuotesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"cacheReady":    h.store.Ready(),
		"cachedTickers": h.store.Len(),
	})
}
