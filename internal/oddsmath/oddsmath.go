package oddsmath

import (
	"errors"

	"Palpiteiro/internal/model"
)

// Product computes the combined decimal price of an accumulator's legs.
func Product(legs []model.Pick) (float64, error) {
	if len(legs) == 0 {
		return 0, errors.New("no legs provided")
	}
	p := 1.0
	for _, leg := range legs {
		if leg.Price <= 1.0 {
			return 0, errors.New("leg price must exceed 1.0")
		}
		p *= leg.Price
	}
	return p, nil
}

// ImpliedProb converts a decimal price to its implied probability.
// Returns 0 for degenerate prices.
func ImpliedProb(price float64) float64 {
	if price <= 1.0 {
		return 0
	}
	return 1.0 / price
}

// InBand reports whether a price falls inside a closed interval.
func InBand(price, lo, hi float64) bool {
	return price >= lo && price <= hi
}
