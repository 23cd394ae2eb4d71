package collector

import (
	"context"
	"log"
	"time"

	"Palpiteiro/internal/model"
	"Palpiteiro/internal/tier"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Events map[string][]RawEvent
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchOdds(_ context.Context, sportKey string) ([]RawEvent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Events[sportKey], nil
}

// League identifies one provider sport key and its importance weight.
type League struct {
	Key        string
	Name       string
	Weight     int
	Basketball bool
}

// RefZone is the fixed reference timezone used for the daily window.
var RefZone = time.FixedZone("UTC-3", -3*60*60)

// minHomePrice filters out events with missing or degenerate home quotes.
const minHomePrice = 1.01

// Collector turns raw provider odds into scored events for one league
// at a time.
type Collector struct {
	Fetcher Fetcher
	Now     func() time.Time
}

// NewCollector creates a new Collector using the real clock.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, Now: time.Now}
}

// FetchEvents pulls one league's odds and returns the day's scored
// events. Transport and decode failures are logged and yield an empty
// result so one league's outage never aborts the batch.
func (c *Collector) FetchEvents(ctx context.Context, league League) []model.Event {
	raw, err := c.Fetcher.FetchOdds(ctx, league.Key)
	if err != nil {
		log.Printf("[WARN] fetch %s: %v", league.Key, err)
		return nil
	}

	now := c.Now().In(RefZone)
	var events []model.Event
	for _, re := range raw {
		kickoff := re.CommenceTime.In(RefZone)
		if !acceptKickoff(kickoff, now, league.Basketball) {
			continue
		}

		ev := model.Event{
			HomeTeam:   re.HomeTeam,
			AwayTeam:   re.AwayTeam,
			League:     league.Name,
			Kickoff:    kickoff,
			Basketball: league.Basketball,
		}
		extractBestPrices(&ev, re)
		if ev.HomePrice <= minHomePrice {
			continue
		}

		rating := tier.Rate(ev.HomeTeam, ev.AwayTeam)
		ev.Score = league.Weight + rating.Bonus
		ev.VIP = rating.VIP
		ev.Marquee = rating.Marquee

		events = append(events, ev)
	}
	return events
}

// acceptKickoff keeps events on today's calendar date in the reference
// timezone. Basketball also keeps early-morning games of the next day
// (home games crossing midnight).
func acceptKickoff(kickoff, now time.Time, basketball bool) bool {
	if sameDay(kickoff, now) {
		return true
	}
	if basketball && sameDay(kickoff, now.AddDate(0, 0, 1)) && kickoff.Hour() < 5 {
		return true
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// extractBestPrices scans every bookmaker and keeps the maximum price
// per outcome for the h2h market and the three fixed totals lines.
func extractBestPrices(ev *model.Event, re RawEvent) {
	for _, bk := range re.Bookmakers {
		for _, mkt := range bk.Markets {
			switch mkt.Key {
			case "h2h":
				for _, o := range mkt.Outcomes {
					switch o.Name {
					case re.HomeTeam:
						ev.HomePrice = max(ev.HomePrice, o.Price)
					case re.AwayTeam:
						ev.AwayPrice = max(ev.AwayPrice, o.Price)
					case "Draw":
						ev.DrawPrice = max(ev.DrawPrice, o.Price)
					}
				}
			case "totals":
				for _, o := range mkt.Outcomes {
					if o.Name != "Over" {
						continue
					}
					switch o.Point {
					case 1.5:
						ev.Over15 = max(ev.Over15, o.Price)
					case 2.5:
						ev.Over25 = max(ev.Over25, o.Price)
					case 3.5:
						ev.Over35 = max(ev.Over35, o.Price)
					}
				}
			}
		}
	}
}
