package models

import "github.com/shopspring/decimal"

// QuoteSnapshot is a single ticker's quote, fetched fresh per comparison
// request and never cached. Price and MarketCap are pointers: the provider
// may omit either field, and an absent value must not be coerced to zero.
type QuoteSnapshot struct {
	Symbol    string
	LongName  string
	ShortName string
	Price     *float64
	MarketCap *float64
	Logo      string
	Website   string
}

// DisplayName prefers the long company name, falling back to the short one.
func (q QuoteSnapshot) DisplayName() string {
	if q.LongName != "" {
		return q.LongName
	}
	return q.ShortName
}

// ComparisonResult is the answer to "what would A's share price be if it had
// B's market capitalization". It exists only for the duration of one
// request/response cycle.
type ComparisonResult struct {
	TickerA            string  `json:"tickerA"`
	TickerB            string  `json:"tickerB"`
	LongNameA          string  `json:"longNameA"`
	LongNameB          string  `json:"longNameB"`
	HypotheticalPriceA string  `json:"hypotheticalPriceA"`
	CurrentPriceA      float64 `json:"currentPriceA"`
	CurrentPriceB      float64 `json:"currentPriceB"`
	LogoA              string  `json:"logoA"`
	LogoB              string  `json:"logoB"`
	WebsiteA           string  `json:"websiteA"`
	WebsiteB           string  `json:"websiteB"`

	// Hypothetical keeps the full-precision value; HypotheticalPriceA is its
	// 2-decimal rendering for display.
	Hypothetical decimal.Decimal `json:"-"`
}
