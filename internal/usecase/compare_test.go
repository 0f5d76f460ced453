package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	xhttp "CapSwap/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotePair() map[string]models.QuoteSnapshot {
	return map[string]models.QuoteSnapshot{
		"AAAA3": {
			Symbol:    "AAAA3",
			LongName:  "Company A S.A.",
			Price:     fptr(10),
			MarketCap: fptr(1000),
			Logo:      "https://icons/aaaa3.svg",
			Website:   "https://a.example",
		},
		"BBBB3": {
			Symbol:    "BBBB3",
			LongName:  "Company B S.A.",
			Price:     fptr(25),
			MarketCap: fptr(500),
			Logo:      "https://icons/bbbb3.svg",
			Website:   "https://b.example",
		},
	}
}

func newCompareService(t *testing.T, provider *fakeProvider) *CompareService {
	t.Helper()
	return NewCompareService(provider, nil, newTestLogger(t))
}

func appErrorFrom(t *testing.T, err error) *xhttp.AppError {
	t.Helper()
	var appErr *xhttp.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr
}

func TestCompareHypotheticalPrice(t *testing.T) {
	provider := &fakeProvider{quotes: quotePair()}
	svc := newCompareService(t, provider)

	// 1000 cap at price 10 implies 100 shares; B's 500 cap over those
	// shares prices each at 5.
	result, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	require.NoError(t, err)

	assert.Equal(t, "AAAA3", result.TickerA)
	assert.Equal(t, "BBBB3", result.TickerB)
	assert.Equal(t, "Company A S.A.", result.LongNameA)
	assert.Equal(t, "Company B S.A.", result.LongNameB)
	assert.Equal(t, "5.00", result.HypotheticalPriceA)
	assert.Equal(t, 10.0, result.CurrentPriceA)
	assert.Equal(t, 25.0, result.CurrentPriceB)
	assert.Equal(t, "https://icons/aaaa3.svg", result.LogoA)
	assert.Equal(t, "https://b.example", result.WebsiteB)
	assert.Equal(t, 2, provider.quoteCalls)
}

func TestCompareRoundsToTwoDecimals(t *testing.T) {
	quotes := quotePair()
	a := quotes["AAAA3"]
	a.Price = fptr(3)
	quotes["AAAA3"] = a
	svc := newCompareService(t, &fakeProvider{quotes: quotes})

	result, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	require.NoError(t, err)
	// 500 * 3 / 1000 = 1.5
	assert.Equal(t, "1.50", result.HypotheticalPriceA)
}

func TestCompareNormalizesTickerCase(t *testing.T) {
	svc := newCompareService(t, &fakeProvider{quotes: quotePair()})

	result, err := svc.Compare(context.Background(), "  aaaa3 ", "bbbb3")
	require.NoError(t, err)
	assert.Equal(t, "AAAA3", result.TickerA)
	assert.Equal(t, "BBBB3", result.TickerB)
}

func TestCompareIsRepeatable(t *testing.T) {
	svc := newCompareService(t, &fakeProvider{quotes: quotePair()})

	first, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	require.NoError(t, err)
	second, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompareLongNameFallsBackToShortName(t *testing.T) {
	quotes := quotePair()
	a := quotes["AAAA3"]
	a.LongName = ""
	a.ShortName = "COMPANY A"
	quotes["AAAA3"] = a
	svc := newCompareService(t, &fakeProvider{quotes: quotes})

	result, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	require.NoError(t, err)
	assert.Equal(t, "COMPANY A", result.LongNameA)
}

func TestCompareEmptyTickersRejected(t *testing.T) {
	provider := &fakeProvider{quotes: quotePair()}
	svc := newCompareService(t, provider)

	_, err := svc.Compare(context.Background(), "  ", "BBBB3")
	appErr := appErrorFrom(t, err)
	assert.Equal(t, "ERR_VALIDATION", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, 0, provider.quoteCalls)
}

func TestCompareZeroPriceAIsInvalidInput(t *testing.T) {
	quotes := quotePair()
	a := quotes["AAAA3"]
	a.Price = fptr(0)
	quotes["AAAA3"] = a
	svc := newCompareService(t, &fakeProvider{quotes: quotes})

	_, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	appErr := appErrorFrom(t, err)
	assert.Equal(t, "ERR_VALIDATION", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

// A zero price outranks any other data gap: it must never surface as the
// incomplete-data case.
func TestCompareZeroPriceAWinsOverMissingMarketCap(t *testing.T) {
	quotes := quotePair()
	a := quotes["AAAA3"]
	a.Price = fptr(0)
	a.MarketCap = nil
	quotes["AAAA3"] = a
	svc := newCompareService(t, &fakeProvider{quotes: quotes})

	_, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	appErr := appErrorFrom(t, err)
	assert.Equal(t, "ERR_VALIDATION", appErr.Code)
}

func TestCompareIncompleteData(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]models.QuoteSnapshot)
	}{
		{"missing price A", func(q map[string]models.QuoteSnapshot) {
			a := q["AAAA3"]
			a.Price = nil
			q["AAAA3"] = a
		}},
		{"missing market cap A", func(q map[string]models.QuoteSnapshot) {
			a := q["AAAA3"]
			a.MarketCap = nil
			q["AAAA3"] = a
		}},
		{"zero market cap B", func(q map[string]models.QuoteSnapshot) {
			b := q["BBBB3"]
			b.MarketCap = fptr(0)
			q["BBBB3"] = b
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotes := quotePair()
			tc.mutate(quotes)
			svc := newCompareService(t, &fakeProvider{quotes: quotes})

			_, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
			appErr := appErrorFrom(t, err)
			assert.Equal(t, "ERR_INCOMPLETE_DATA", appErr.Code)
			assert.Equal(t, http.StatusNotFound, appErr.Status)
		})
	}
}

func TestCompareUnknownTickerIsNotFound(t *testing.T) {
	svc := newCompareService(t, &fakeProvider{quotes: quotePair()})

	_, err := svc.Compare(context.Background(), "ZZZZ9", "BBBB3")
	appErr := appErrorFrom(t, err)
	assert.Equal(t, "ERR_NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Contains(t, appErr.Message, "ZZZZ9")
}

func TestCompareProviderDownIsUpstreamError(t *testing.T) {
	provider := &fakeProvider{
		quoteErr: fmt.Errorf("%w: connection refused", drepo.ErrUnavailable),
	}
	svc := newCompareService(t, provider)

	_, err := svc.Compare(context.Background(), "AAAA3", "BBBB3")
	appErr := appErrorFrom(t, err)
	assert.Equal(t, "ERR_UPSTREAM_UNAVAILABLE", appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}
