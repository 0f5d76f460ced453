package repository

import (
	"context"

	"CapSwap/internal/domain/models"
)

// QuoteProvider is the upstream quotes service. Implementations translate
// provider failures into ErrNotFound / ErrUnavailable.
type QuoteProvider interface {
	// ListTickers returns up to limit tickers sorted by descending trading
	// volume.
	ListTickers(ctx context.Context, limit int) ([]models.TickerRecord, error)
	// SearchTickers returns up to limit tickers matching the query,
	// filtered provider-side.
	SearchTickers(ctx context.Context, query string, limit int) ([]models.TickerRecord, error)
	// GetQuote returns the full quote for a single ticker symbol.
	GetQuote(ctx context.Context, symbol string) (models.QuoteSnapshot, error)
}

// TickerStore holds the in-memory ticker list. One writer, many readers;
// contents are only ever replaced wholesale.
type TickerStore interface {
	Replace(records []models.TickerRecord)
	All() []models.TickerRecord
	Ready() bool
	Len() int
}

// SnapshotStore keeps a copy of the last successful ticker list so a
// restarted process can warm its cache before the upstream download lands.
type SnapshotStore interface {
	Save(ctx context.Context, records []models.TickerRecord) error
	Load(ctx context.Context) ([]models.TickerRecord, error)
}

// Metrics records domain-level observability signals.
type Metrics interface {
	RecordSearch(source string)
	RecordComparison(outcome string)
	RecordError(kind string)
	SetTickerCacheSize(n int)
	RecordUpstreamLatency(endpoint string, seconds float64)
}
