package models

import "fmt"

// TickerRecord is one entry of the bulk ticker list, sourced verbatim from
// the quote provider. Records are immutable once cached; the cache is only
// ever replaced wholesale.
type TickerRecord struct {
	Symbol  string `json:"stock"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}

// SearchSuggestion is one autocomplete entry returned by /api/search.
type SearchSuggestion struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}

// Suggestion renders the record in the "{name} ({ticker})" shape the
// autocomplete UI consumes.
func (t TickerRecord) Suggestion() SearchSuggestion {
	return SearchSuggestion{
		Value:   t.Symbol,
		Label:   fmt.Sprintf("%s (%s)", t.Name, t.Symbol),
		Logo:    t.Logo,
		Website: t.Website,
	}
}
