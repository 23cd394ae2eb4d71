package collector

import (
	"context"
	"time"
)

// RawEvent mirrors one event object from the odds provider.
type RawEvent struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quotes for an event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is a priced market ("h2h", "totals") within a bookmaker.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single priced selection. Point is only meaningful for
// totals markets.
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point"`
}

// Fetcher defines the interface for pulling raw odds for a sport key.
type Fetcher interface {
	FetchOdds(ctx context.Context, sportKey string) ([]RawEvent, error)
	Name() string
}
