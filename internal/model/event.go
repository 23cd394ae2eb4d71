package model

import "time"

// Event is a single fixture with the best available prices for the
// markets the bot cares about. Fields are set during ingestion and not
// mutated afterwards.
type Event struct {
	HomeTeam   string
	AwayTeam   string
	League     string
	Kickoff    time.Time // already converted to the reference timezone
	Basketball bool

	// Best price across all bookmakers, decimal odds. Zero means the
	// market was not offered.
	HomePrice float64
	DrawPrice float64
	AwayPrice float64
	Over15    float64
	Over25    float64
	Over35    float64

	// Score is league weight plus tier bonus; VIP marks a top-tier
	// team, Marquee any tier match (top or second).
	Score   int
	VIP     bool
	Marquee bool

	// Blurb is the oracle's one-line description, filled for VIP
	// events during refresh so cached grades keep their enrichment.
	Blurb string
}

// Label returns the "Home x Away" string used in reports and for
// matching enrichment lines back to the event.
func (e *Event) Label() string {
	return e.HomeTeam + " x " + e.AwayTeam
}
