package model

type QuoteCategory string

const (
	QuoteFocus        QuoteCategory = "focus"
	QuoteBalance      QuoteCategory = "balance"
	QuoteMindfulness  QuoteCategory = "mindfulness"
	QuoteProductivity QuoteCategory = "productivity"
	QuoteWellness     QuoteCategory = "wellness"
)

type Quote struct {
	Text     string        `json:"text"`
	Author   string        `json:"author"`
	Category QuoteCategory `json:"category"`
}
