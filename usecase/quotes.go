package usecase

import (
	"math/rand"
	"time"

	"main/model"
)

var quoteCatalogue = []model.Quote{
	{
		Text:     "The key to digital wellness is not avoiding technology, but using it intentionally.",
		Author:   "Digital Wellness Expert",
		Category: model.QuoteWellness,
	},
	{
		Text:     "Every moment of mindful screen time is a victory over mindless scrolling.",
		Author:   "Mindfulness Coach",
		Category: model.QuoteMindfulness,
	},
	{
		Text:     "Your attention is your most valuable asset - invest it wisely.",
		Author:   "Productivity Guru",
		Category: model.QuoteFocus,
	},
	{
		Text:     "Balance is not about perfect restriction, but conscious choice.",
		Author:   "Life Balance Coach",
		Category: model.QuoteBalance,
	},
	{
		Text:     "Small breaks create big breakthroughs in productivity and well-being.",
		Author:   "Wellness Advocate",
		Category: model.QuoteProductivity,
	},
	{
		Text:     "The goal isn't to eliminate screen time, but to make every minute count.",
		Author:   "Digital Minimalist",
		Category: model.QuoteFocus,
	},
	{
		Text:     "True freedom comes from choosing when and how to engage with technology.",
		Author:   "Tech Philosophy Writer",
		Category: model.QuoteWellness,
	},
	{
		Text:     "Mindful usage today creates healthier habits tomorrow.",
		Author:   "Behavioral Expert",
		Category: model.QuoteMindfulness,
	},
	{
		Text:     "Your digital habits shape your real-world experiences.",
		Author:   "Digital Wellness Researcher",
		Category: model.QuoteBalance,
	},
	{
		Text:     "Progress, not perfection, is the path to digital wellness.",
		Author:   "Wellness Coach",
		Category: model.QuoteWellness,
	},
	{
		Text:     "Every conscious choice to step away from screens is an act of self-care.",
		Author:   "Self-Care Advocate",
		Category: model.QuoteMindfulness,
	},
	{
		Text:     "The most productive people know when to disconnect to reconnect.",
		Author:   "Productivity Expert",
		Category: model.QuoteProductivity,
	},
	{
		Text:     "Your goals are closer than your next notification - stay focused.",
		Author:   "Focus Coach",
		Category: model.QuoteFocus,
	},
	{
		Text:     "Digital boundaries create space for real-world connections.",
		Author:   "Relationship Expert",
		Category: model.QuoteBalance,
	},
	{
		Text:     "Awareness is the first step toward intentional technology use.",
		Author:   "Digital Awareness Expert",
		Category: model.QuoteMindfulness,
	},
	{
		Text:     "Your screen time goals are investments in your future self.",
		Author:   "Personal Development Coach",
		Category: model.QuoteWellness,
	},
	{
		Text:     "Quality screen time over quantity - make every interaction meaningful.",
		Author:   "Digital Quality Advocate",
		Category: model.QuoteFocus,
	},
	{
		Text:     "The power to change your digital habits lies within you.",
		Author:   "Change Management Expert",
		Category: model.QuoteProductivity,
	},
	{
		Text:     "Celebrating small wins builds momentum for bigger changes.",
		Author:   "Success Coach",
		Category: model.QuoteWellness,
	},
	{
		Text:     "Your attention is precious - guard it like the treasure it is.",
		Author:   "Mindful Living Expert",
		Category: model.QuoteMindfulness,
	},
}

// AllQuotes returns the full static catalogue.
func AllQuotes() []model.Quote {
	return quoteCatalogue
}

// DailyQuote picks the quote of the day deterministically: the date string is
// folded through a 31-multiplier rolling hash with 32-bit wraparound, and the
// absolute value indexes the catalogue. Repeated calls on the same day always
// return the same quote.
func DailyQuote(date time.Time) model.Quote {
	day := date.Format("Mon Jan 02 2006")

	var hash int32
	for _, c := range day {
		hash = hash*31 + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}

	return quoteCatalogue[int(hash)%len(quoteCatalogue)]
}

// RandomQuote picks uniformly at random, optionally filtered to one category.
// An unmatched category falls back to the full catalogue.
func RandomQuote(category model.QuoteCategory) model.Quote {
	pool := quoteCatalogue
	if category != "" {
		filtered := QuotesByCategory(category)
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return pool[rand.Intn(len(pool))]
}

// QuotesByCategory returns all quotes tagged with the category.
func QuotesByCategory(category model.QuoteCategory) []model.Quote {
	quotes := make([]model.Quote, 0)
	for _, q := range quoteCatalogue {
		if q.Category == category {
			quotes = append(quotes, q)
		}
	}
	return quotes
}
