package models

// SearchRequest binds /api/search query parameters. A missing or short query
// is not an error; it yields an empty suggestion list.
type SearchRequest struct {
	Q string `query:"q"`
}

// CompareRequest binds /api/compare query parameters.
type CompareRequest struct {
	TickerA string `query:"tickerA" validate:"required"`
	TickerB string `query:"tickerB" validate:"required"`
}
