package model

// Pick is the single recommendation derived from one event. It lives
// only for the daily cycle that produced it.
type Pick struct {
	Match     string  // owning event's label
	Selection string  // e.g. "Over 2.5 Gols", "Vitória do Flamengo"
	Price     float64 // decimal odds
	Marquee   bool    // event references a tiered team
	Synthetic bool    // fallback pick with a nominal price, not a raw quote
}

// Accumulator is an ordered multi-leg combination and the running
// product of its leg prices.
type Accumulator struct {
	Legs    []Pick
	Product float64
}
