package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"Palpiteiro/internal/model"
)

// RefreshFunc runs the full ingestion+analysis pipeline and returns the
// day's processed events.
type RefreshFunc func(ctx context.Context) []model.Event

// Grade holds the most recent fully-processed event list for one sport
// with a time-to-live. Refresh is guarded by check-then-act under the
// lock so concurrent callers never trigger duplicate provider calls.
type Grade struct {
	mu          sync.Mutex
	ttl         time.Duration
	events      []model.Event
	refreshedAt time.Time
	now         func() time.Time
}

// New creates an empty Grade cache with the given TTL.
func New(ttl time.Duration) *Grade {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Grade{ttl: ttl, now: time.Now}
}

// GetOrRefresh returns the cached list when still fresh, otherwise runs
// refresh. A non-empty result replaces the cache atomically; an empty
// result leaves a previously good cache in place (stale-but-valid beats
// empty).
func (g *Grade) GetOrRefresh(ctx context.Context, refresh RefreshFunc) []model.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fresh() {
		return g.events
	}

	events := refresh(ctx)
	if len(events) == 0 {
		if len(g.events) > 0 {
			log.Println("[WARN] refresh returned nothing, keeping stale grade")
		}
		return g.events
	}

	g.events = events
	g.refreshedAt = g.now()
	return g.events
}

// Invalidate clears the list and timestamp, forcing the next call to
// refresh regardless of elapsed time.
func (g *Grade) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = nil
	g.refreshedAt = time.Time{}
}

// Age returns how long ago the last successful refresh happened, and
// false when the cache has never been filled.
func (g *Grade) Age() (time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refreshedAt.IsZero() {
		return 0, false
	}
	return g.now().Sub(g.refreshedAt), true
}

func (g *Grade) fresh() bool {
	return !g.refreshedAt.IsZero() && g.now().Sub(g.refreshedAt) < g.ttl
}
