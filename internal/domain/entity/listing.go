package entity

// Listing — синтетический лот с рынка. Immutable once generated, lives
// only for the duration of one response.
type Listing struct {
	ID           string
	Name         string
	Slot         string
	PriceChaos   float64
	MarketChaos  float64
	Seller       string
	ListedAgoMin int
	ItemLevel    *int
	URL          string
}

// ScoredItem pairs a listing with its computed desirability score.
// Derived, never stored.
type ScoredItem struct {
	Listing Listing
	Score   float64
}
