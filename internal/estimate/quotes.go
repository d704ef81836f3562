package estimate

import (
	"slices"

	"movefunnel/internal/domain"
)

// DefaultQuoteRange is used for mover quotes when no estimate has been saved.
var DefaultQuoteRange = domain.PriceRange{Min: 2000, Max: 4000}

type quoteSpread struct{ lo, hi float64 }

// Offsets into the estimate range for each mover in roster order. Movers past
// the end reuse the last entry.
var quoteSpreads = []quoteSpread{
	{0.0, 0.3},
	{0.2, 0.5},
	{0.1, 0.4},
	{0.15, 0.45},
}

// MoverQuotes places each mover's quote inside the estimate range and returns
// the movers ordered by match score, best first. A nil estimate uses
// DefaultQuoteRange.
func MoverQuotes(movers []domain.Mover, est *domain.MoveEstimate) []domain.Mover {
	r := DefaultQuoteRange
	if est != nil {
		if est.CostRange.Min != 0 {
			r.Min = est.CostRange.Min
		}
		if est.CostRange.Max != 0 {
			r.Max = est.CostRange.Max
		}
	}
	span := r.Max - r.Min

	out := make([]domain.Mover, len(movers))
	for i, m := range movers {
		f := quoteSpreads[min(i, len(quoteSpreads)-1)]
		lo := round(r.Min + span*f.lo)
		hi := round(r.Min + span*f.hi)
		m.QuoteRange = domain.PriceRange{Min: max(r.Min, lo), Max: min(r.Max, hi)}
		out[i] = m
	}
	slices.SortStableFunc(out, func(a, b domain.Mover) int { return b.MatchScore - a.MatchScore })
	return out
}
