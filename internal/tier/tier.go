package tier

import (
	"strings"

	"Palpiteiro/internal/normalize"
)

// Bonus added to an event's score when one of its teams matches a tier
// list. Top-tier matches also flag the event as VIP.
const (
	TopBonus    = 25
	SecondBonus = 10
)

// topTier holds the names that make an event VIP. Entries are stored
// already normalized; matching is substring containment in either
// direction so "ATLETICO" matches "CLUB ATLETICO MINEIRO".
var topTier = []string{
	"FLAMENGO", "PALMEIRAS", "CORINTHIANS", "SAO PAULO",
	"REAL MADRID", "BARCELONA", "MANCHESTER CITY", "LIVERPOOL",
	"ARSENAL", "BAYERN", "PARIS SAINT GERMAIN", "INTER MILAN",
	"JUVENTUS", "BOCA JUNIORS", "RIVER PLATE",
	"LAKERS", "CELTICS", "WARRIORS",
}

var secondTier = []string{
	"GREMIO", "INTERNACIONAL", "ATLETICO MINEIRO", "CRUZEIRO",
	"BOTAFOGO", "FLUMINENSE", "VASCO", "SANTOS",
	"CHELSEA", "TOTTENHAM", "MANCHESTER UNITED", "MILAN",
	"NAPOLI", "ATLETICO MADRID", "SEVILLA", "DORTMUND",
	"KNICKS", "BUCKS", "NUGGETS", "THUNDER",
}

// Rating is the tier outcome for a pair of team names.
type Rating struct {
	Bonus   int
	VIP     bool
	Marquee bool
}

// Rate checks both teams against the ranked lists. A top-tier match
// wins over a second-tier one regardless of which team produced it.
func Rate(home, away string) Rating {
	h := normalize.Name(home)
	a := normalize.Name(away)

	if matchesAny(h, topTier) || matchesAny(a, topTier) {
		return Rating{Bonus: TopBonus, VIP: true, Marquee: true}
	}
	if matchesAny(h, secondTier) || matchesAny(a, secondTier) {
		return Rating{Bonus: SecondBonus, Marquee: true}
	}
	return Rating{}
}

func matchesAny(name string, list []string) bool {
	if name == "" {
		return false
	}
	for _, entry := range list {
		if strings.Contains(name, entry) || strings.Contains(entry, name) {
			return true
		}
	}
	return false
}
