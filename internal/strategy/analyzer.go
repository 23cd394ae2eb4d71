package strategy

import (
	"fmt"
	"math/rand"

	"Palpiteiro/internal/model"
	"Palpiteiro/internal/oddsmath"
)

// Threshold bands for the goals rules and the winner market, decimal
// odds, closed intervals.
var (
	bandOver25 = [2]float64{1.40, 1.95}
	bandOver15 = [2]float64{1.25, 1.55}
	bandOver35 = [2]float64{1.60, 2.20}
	bandWinner = [2]float64{1.15, 1.85}
)

// Fixed nominal prices for locked-match fallback picks.
const (
	under25Price    = 1.65
	bothScorePrice  = 1.75
	lockedOver25Cut = 2.0
	lockedDrawCut   = 3.10
)

// Analyzer applies the ordered decision policy over an event's odds.
// The random source breaks ties between surviving candidates and must
// be injected so tests can seed it.
type Analyzer struct {
	Rand *rand.Rand
}

// NewAnalyzer creates an Analyzer with the given random source.
func NewAnalyzer(rng *rand.Rand) *Analyzer {
	return &Analyzer{Rand: rng}
}

// Analyze produces the report lines and the candidate pick for one
// event. Enrichment text, when present, is prepended as a rationale
// line and never influences pick selection. Never errors: absent odds
// simply fail every band and fall through to the locked-match fallback.
func (a *Analyzer) Analyze(ev *model.Event, enrichment string) ([]string, *model.Pick) {
	var lines []string
	if enrichment != "" {
		lines = append(lines, enrichment)
	}

	var candidates []model.Pick
	addCandidate := func(selection string, price float64) {
		candidates = append(candidates, model.Pick{
			Match:     ev.Label(),
			Selection: selection,
			Price:     price,
			Marquee:   ev.Marquee,
		})
	}

	// Goals rules, strict priority: exactly one ever fires.
	switch {
	case oddsmath.InBand(ev.Over25, bandOver25[0], bandOver25[1]):
		lines = append(lines, fmt.Sprintf("Over 2.5 Gols (@%.2f)", ev.Over25))
		addCandidate("Over 2.5 Gols", ev.Over25)
	case oddsmath.InBand(ev.Over15, bandOver15[0], bandOver15[1]):
		lines = append(lines, fmt.Sprintf("Over 1.5 Gols (@%.2f)", ev.Over15))
		addCandidate("Over 1.5 Gols", ev.Over15)
	case ev.Over35 > 0 && oddsmath.InBand(ev.Over35, bandOver35[0], bandOver35[1]):
		lines = append(lines, fmt.Sprintf("Over 3.5 Gols (@%.2f)", ev.Over35))
		addCandidate("Over 3.5 Gols", ev.Over35)
	}

	// Winner market, independent of the goals rules.
	if oddsmath.InBand(ev.HomePrice, bandWinner[0], bandWinner[1]) {
		lines = append(lines, fmt.Sprintf("Vitória do %s (@%.2f)", ev.HomeTeam, ev.HomePrice))
		addCandidate("Vitória do "+ev.HomeTeam, ev.HomePrice)
	} else if oddsmath.InBand(ev.AwayPrice, bandWinner[0], bandWinner[1]) {
		lines = append(lines, fmt.Sprintf("Vitória do %s (@%.2f)", ev.AwayTeam, ev.AwayPrice))
		addCandidate("Vitória do "+ev.AwayTeam, ev.AwayPrice)
	}

	if len(candidates) == 0 {
		return a.lockedFallback(ev, lines)
	}

	pick := candidates[0]
	if len(candidates) > 1 {
		pick = candidates[a.Rand.Intn(len(candidates))]
	}
	return lines, &pick
}

// lockedFallback handles events whose odds fail every primary rule.
// The recommendation carries a fixed nominal price, not a raw quote.
func (a *Analyzer) lockedFallback(ev *model.Event, lines []string) ([]string, *model.Pick) {
	pick := &model.Pick{Match: ev.Label(), Marquee: ev.Marquee, Synthetic: true}
	if ev.Over25 > lockedOver25Cut || ev.DrawPrice < lockedDrawCut {
		pick.Selection = "Under 2.5 Gols"
		pick.Price = under25Price
		lines = append(lines, "Jogo travado: Under 2.5 Gols")
	} else {
		pick.Selection = "Ambas Marcam"
		pick.Price = bothScorePrice
		lines = append(lines, "Jogo travado: Ambas Marcam")
	}
	return lines, pick
}
