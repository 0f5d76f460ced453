package usecase

import (
	"context"
	"errors"
	"strings"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	xhttp "CapSwap/pkg/http"
	applogger "CapSwap/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CompareService computes the hypothetical price of company A under company
// B's market capitalization. Quotes are fetched fresh on every call.
type CompareService struct {
	provider drepo.QuoteProvider
	metrics  drepo.Metrics
	logger   *applogger.Logger
}

func NewCompareService(provider drepo.QuoteProvider, metrics drepo.Metrics, logger *applogger.Logger) *CompareService {
	return &CompareService{provider: provider, metrics: metrics, logger: logger}
}

// Compare fetches both quotes (in parallel, there is no ordering dependency)
// and runs the market-cap substitution:
//
//	impliedShares = marketCapA / priceA
//	hypothetical  = marketCapB / impliedShares
func (s *CompareService) Compare(ctx context.Context, tickerA, tickerB string) (models.ComparisonResult, error) {
	a := strings.ToUpper(strings.TrimSpace(tickerA))
	b := strings.ToUpper(strings.TrimSpace(tickerB))
	if a == "" || b == "" {
		return models.ComparisonResult{}, s.fail("invalid_input", xhttp.ValidationError("tickerA and tickerB are required"))
	}

	var quoteA, quoteB models.QuoteSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quoteA, err = s.provider.GetQuote(gctx, a)
		return wrapQuoteError(a, err)
	})
	g.Go(func() error {
		var err error
		quoteB, err = s.provider.GetQuote(gctx, b)
		return wrapQuoteError(b, err)
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("quote fetch failed", applogger.String("tickerA", a), applogger.String("tickerB", b), applogger.Error(err))
		return models.ComparisonResult{}, s.fail(outcomeOf(err), err)
	}

	// An explicit zero price is a division-by-zero request, reported
	// separately from a field the provider simply did not return.
	if quoteA.Price != nil && *quoteA.Price == 0 {
		return models.ComparisonResult{}, s.fail("invalid_input", xhttp.ValidationErrorf("company A (%s) price is zero", a))
	}
	if quoteA.Price == nil || quoteA.MarketCap == nil || *quoteA.MarketCap == 0 ||
		quoteB.MarketCap == nil || *quoteB.MarketCap == 0 {
		return models.ComparisonResult{}, s.fail("incomplete_data", xhttp.IncompleteDataError("market cap or price data missing for one of the tickers"))
	}

	priceA := decimal.NewFromFloat(*quoteA.Price)
	marketCapA := decimal.NewFromFloat(*quoteA.MarketCap)
	marketCapB := decimal.NewFromFloat(*quoteB.MarketCap)

	impliedShares := marketCapA.Div(priceA)
	hypothetical := marketCapB.Div(impliedShares)

	if s.metrics != nil {
		s.metrics.RecordComparison("success")
	}

	return models.ComparisonResult{
		TickerA:            quoteA.Symbol,
		TickerB:            quoteB.Symbol,
		LongNameA:          quoteA.DisplayName(),
		LongNameB:          quoteB.DisplayName(),
		HypotheticalPriceA: hypothetical.StringFixed(2),
		CurrentPriceA:      *quoteA.Price,
		CurrentPriceB:      floatOrZero(quoteB.Price),
		LogoA:              quoteA.Logo,
		LogoB:              quoteB.Logo,
		WebsiteA:           quoteA.Website,
		WebsiteB:           quoteB.Website,
		Hypothetical:       hypothetical,
	}, nil
}

func (s *CompareService) fail(outcome string, err error) error {
	if s.metrics != nil {
		s.metrics.RecordComparison(outcome)
	}
	return err
}

func wrapQuoteError(symbol string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, drepo.ErrNotFound):
		return xhttp.NotFoundErrorf("ticker %s not found", symbol).WithError(err)
	case errors.Is(err, drepo.ErrUnavailable):
		return xhttp.UpstreamUnavailableError("quote provider unavailable").WithError(err)
	default:
		return err
	}
}

func outcomeOf(err error) string {
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "ERR_NOT_FOUND":
			return "not_found"
		case "ERR_UPSTREAM_UNAVAILABLE":
			return "upstream_error"
		}
	}
	return "error"
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
