package pipeline

import (
	"context"
	"log"
	"sort"
	"time"

	"Palpiteiro/internal/cache"
	"Palpiteiro/internal/collector"
	"Palpiteiro/internal/enrichment"
	"Palpiteiro/internal/model"
	"Palpiteiro/internal/strategy"
)

// Sport selects which league table and grade cache a cycle uses.
type Sport int

const (
	Soccer Sport = iota
	Basketball
)

func (s Sport) String() string {
	if s == Basketball {
		return "basketball"
	}
	return "soccer"
}

// EventReport groups one event with its rationale lines.
type EventReport struct {
	Event model.Event
	Lines []string
}

// Report is the full output of one daily cycle.
type Report struct {
	Events      []model.Event
	Groups      []EventReport
	Picks       []model.Pick
	Accumulator *model.Accumulator
}

// Empty reports whether the cycle found nothing to publish.
func (r *Report) Empty() bool { return len(r.Events) == 0 }

// Engine owns one run of the daily pipeline: sequential league
// ingestion, batched enrichment, per-event analysis and accumulator
// assembly, fronted by a per-sport grade cache. Built explicitly in
// main and handed to the scheduler; there is no package-level state.
type Engine struct {
	Collector *collector.Collector
	Oracle    *enrichment.Oracle
	Analyzer  *strategy.Analyzer
	Builder   *strategy.Builder

	SoccerLeagues     []collector.League
	BasketballLeagues []collector.League

	// Pause between successive league fetches, provider rate-limit
	// courtesy.
	Pause time.Duration

	soccerGrade *cache.Grade
	basketGrade *cache.Grade
}

// NewEngine wires the pipeline with per-sport caches of the given TTL.
func NewEngine(col *collector.Collector, oracle *enrichment.Oracle, analyzer *strategy.Analyzer, builder *strategy.Builder, soccer, basketball []collector.League, ttl, pause time.Duration) *Engine {
	return &Engine{
		Collector:         col,
		Oracle:            oracle,
		Analyzer:          analyzer,
		Builder:           builder,
		SoccerLeagues:     soccer,
		BasketballLeagues: basketball,
		Pause:             pause,
		soccerGrade:       cache.New(ttl),
		basketGrade:       cache.New(ttl),
	}
}

// Grades returns the day's processed events for a sport, refreshing
// through the cache when stale.
func (e *Engine) Grades(ctx context.Context, sport Sport) []model.Event {
	return e.grade(sport).GetOrRefresh(ctx, e.refresh(sport))
}

// Invalidate clears a sport's grade cache (operator cache busting).
func (e *Engine) Invalidate(sport Sport) {
	e.grade(sport).Invalidate()
}

// Run produces the complete cycle output for a sport. When force is
// set the cache is invalidated first. An empty report means nothing to
// publish today, never an error.
func (e *Engine) Run(ctx context.Context, sport Sport, force bool) *Report {
	if force {
		e.Invalidate(sport)
	}
	events := e.Grades(ctx, sport)
	r := &Report{Events: events}
	if len(events) == 0 {
		return r
	}

	for i := range events {
		lines, pick := e.Analyzer.Analyze(&events[i], events[i].Blurb)
		r.Groups = append(r.Groups, EventReport{Event: events[i], Lines: lines})
		if pick != nil {
			r.Picks = append(r.Picks, *pick)
		}
	}
	r.Accumulator = e.Builder.Build(r.Picks)
	return r
}

// CacheAge exposes the grade cache age for the status command.
func (e *Engine) CacheAge(sport Sport) (time.Duration, bool) {
	return e.grade(sport).Age()
}

func (e *Engine) grade(sport Sport) *cache.Grade {
	if sport == Basketball {
		return e.basketGrade
	}
	return e.soccerGrade
}

func (e *Engine) leagues(sport Sport) []collector.League {
	if sport == Basketball {
		return e.BasketballLeagues
	}
	return e.SoccerLeagues
}

// refresh builds the cache refresh closure: strictly sequential league
// fetches with a pause between them, then one batched oracle call for
// the VIP events.
func (e *Engine) refresh(sport Sport) cache.RefreshFunc {
	return func(ctx context.Context) []model.Event {
		var events []model.Event
		for i, lg := range e.leagues(sport) {
			if i > 0 && e.Pause > 0 {
				select {
				case <-ctx.Done():
					log.Printf("[WARN] %s refresh cancelled: %v", sport, ctx.Err())
					return events
				case <-time.After(e.Pause):
				}
			}
			events = append(events, e.Collector.FetchEvents(ctx, lg)...)
		}

		// Marquee events first in the daily grade.
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Score > events[j].Score
		})

		blurbs := e.Oracle.Describe(ctx, events)
		if len(blurbs) > 0 {
			for i := range events {
				if events[i].VIP {
					events[i].Blurb = enrichment.Match(blurbs, events[i].Label())
				}
			}
		}
		return events
	}
}
