package strategy

import (
	"math/rand"
	"sort"

	"Palpiteiro/internal/model"
)

// Builder assembles one bounded-risk accumulator from the day's picks
// via a randomized, retry-bounded search. It deliberately trades
// optimality for speed and day-to-day variety in the output: the first
// satisfying prefix found in a shuffle wins.
type Builder struct {
	MinLegs           int
	MinLegPrice       float64
	MaxPartialProduct float64
	BandLow           float64
	BandHigh          float64
	MaxAttempts       int
	Rand              *rand.Rand
}

// NewBuilder creates a Builder with the default risk parameters.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{
		MinLegs:           3,
		MinLegPrice:       1.25,
		MaxPartialProduct: 25.0,
		BandLow:           6.0,
		BandHigh:          30.0,
		MaxAttempts:       500,
		Rand:              rng,
	}
}

// Build searches for a combination whose price product lands in the
// acceptable band. Returns nil when fewer than MinLegs picks are
// available or when the retry budget is exhausted without a hit.
func (b *Builder) Build(picks []model.Pick) *model.Accumulator {
	if len(picks) < b.MinLegs {
		return nil
	}

	pool := make([]model.Pick, len(picks))
	for attempt := 0; attempt < b.MaxAttempts; attempt++ {
		copy(pool, picks)
		b.Rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		// Marquee legs first; the stable sort keeps the shuffled order
		// within each group.
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Marquee && !pool[j].Marquee
		})

		if acc := b.scan(pool); acc != nil {
			return acc
		}
	}
	return nil
}

// scan greedily walks one reordering, skipping legs that are too cheap
// or would blow the partial-product cap, and stops at the first prefix
// whose product falls inside the band.
func (b *Builder) scan(pool []model.Pick) *model.Accumulator {
	var legs []model.Pick
	product := 1.0
	for _, p := range pool {
		if p.Price < b.MinLegPrice {
			continue
		}
		if product*p.Price > b.MaxPartialProduct {
			continue
		}
		legs = append(legs, p)
		product *= p.Price
		if product >= b.BandLow && product <= b.BandHigh {
			out := make([]model.Pick, len(legs))
			copy(out, legs)
			return &model.Accumulator{Legs: out, Product: product}
		}
	}
	return nil
}
