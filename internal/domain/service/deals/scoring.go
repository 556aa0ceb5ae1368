package deals

import "github.com/DerekDew/poe2-api-stub/internal/domain/entity"

// Scoring weights. Margin dominates by two orders of magnitude, spread
// is a weak tie-breaker, recency adds a fixed step bonus.
const (
	weightMargin = 100.0
	weightSpread = 0.5
	weightVel    = 20.0
)

// MarginPct возвращает скидку лота относительно рынка в процентах.
// A non-positive market yields 0; a negative price is not validated here
// and inflates the margin (caller's concern).
func MarginPct(market, price float64) float64 {
	if market <= 0 {
		return 0
	}

	return max(0, (market-price)/market*100)
}

// VelocityBonus is a non-increasing step function of listing age.
// Exact boundary values fall into the lower bucket.
func VelocityBonus(listedAgoMin int) float64 {
	switch {
	case listedAgoMin <= 5:
		return weightVel
	case listedAgoMin <= 15:
		return weightVel - 10
	case listedAgoMin <= 60:
		return weightVel - 15
	default:
		return 0
	}
}

// Score maps a listing to its deal-attractiveness score. Pure and
// deterministic given the listing.
func Score(listing entity.Listing) float64 {
	margin := MarginPct(listing.MarketChaos, listing.PriceChaos)
	spread := max(0, listing.MarketChaos-listing.PriceChaos)

	return margin*weightMargin + spread*weightSpread + VelocityBonus(listing.ListedAgoMin)
}
