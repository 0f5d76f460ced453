package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	applogger "CapSwap/pkg/logger"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func fptr(v float64) *float64 { return &v }

// fakeProvider is a call-counting QuoteProvider stand-in. GetQuote is hit
// from concurrent goroutines, hence the mutex.
type fakeProvider struct {
	mu sync.Mutex

	listRecords   []models.TickerRecord
	listErr       error
	searchRecords []models.TickerRecord
	searchErr     error
	quotes        map[string]models.QuoteSnapshot
	quoteErr      error

	listCalls   int
	searchCalls int
	quoteCalls  int
}

func (f *fakeProvider) ListTickers(_ context.Context, _ int) ([]models.TickerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRecords, nil
}

func (f *fakeProvider) SearchTickers(_ context.Context, _ string, _ int) ([]models.TickerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchRecords, nil
}

func (f *fakeProvider) GetQuote(_ context.Context, symbol string) (models.QuoteSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quoteCalls++
	if f.quoteErr != nil {
		return models.QuoteSnapshot{}, f.quoteErr
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: %s", drepo.ErrNotFound, symbol)
	}
	return q, nil
}

// fakeSnapshot records saves and serves a canned load result.
type fakeSnapshot struct {
	records []models.TickerRecord
	loadErr error
	saved   [][]models.TickerRecord
}

func (f *fakeSnapshot) Load(_ context.Context) ([]models.TickerRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records, nil
}

func (f *fakeSnapshot) Save(_ context.Context, records []models.TickerRecord) error {
	f.saved = append(f.saved, records)
	return nil
}
