package scheduler

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"Palpiteiro/internal/collector"
	"Palpiteiro/internal/enrichment"
	"Palpiteiro/internal/pipeline"
	"Palpiteiro/internal/recorder"
	"Palpiteiro/internal/strategy"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.sent = append(f.sent, text)
	return nil
}

type memRecorder struct {
	cycles []recorder.CycleRecord
}

func (m *memRecorder) RecordCycle(rec *recorder.CycleRecord) error {
	m.cycles = append(m.cycles, *rec)
	return nil
}
func (m *memRecorder) Close() error { return nil }

func newTestScheduler(events map[string][]collector.RawEvent) (*Scheduler, *fakeSender, *memRecorder) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, collector.RefZone)
	col := &collector.Collector{
		Fetcher: &collector.MockFetcher{Events: events},
		Now:     func() time.Time { return now },
	}
	rng := rand.New(rand.NewSource(11))
	engine := pipeline.NewEngine(col, enrichment.NewOracle("", "", ""),
		strategy.NewAnalyzer(rng), strategy.NewBuilder(rng),
		[]collector.League{{Key: "league_a", Name: "Liga A", Weight: 8}}, nil,
		2*time.Hour, 0)

	sender := &fakeSender{}
	rec := &memRecorder{}
	return NewScheduler(context.Background(), engine, sender, rec), sender, rec
}

func eventFixture(now time.Time) collector.RawEvent {
	return collector.RawEvent{
		HomeTeam:     "Time A",
		AwayTeam:     "Time B",
		CommenceTime: now,
		Bookmakers: []collector.Bookmaker{{Markets: []collector.Market{
			{Key: "h2h", Outcomes: []collector.Outcome{
				{Name: "Time A", Price: 1.50},
				{Name: "Draw", Price: 3.20},
				{Name: "Time B", Price: 6.00},
			}},
			{Key: "totals", Outcomes: []collector.Outcome{
				{Name: "Over", Price: 1.70, Point: 2.5},
			}},
		}}},
	}
}

func TestRunCycle_DeliversAndRecords(t *testing.T) {
	now := time.Date(2025, 5, 10, 16, 0, 0, 0, collector.RefZone)
	s, sender, rec := newTestScheduler(map[string][]collector.RawEvent{
		"league_a": {eventFixture(now)},
	})

	s.RunCycle(pipeline.Soccer, "CRON", false)

	if len(sender.sent) != 2 {
		t.Fatalf("expected report + accumulator messages, got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0], "Time A x Time B") {
		t.Errorf("report missing the event block:\n%s", sender.sent[0])
	}
	if len(rec.cycles) != 1 {
		t.Fatalf("expected one audit row, got %d", len(rec.cycles))
	}
	row := rec.cycles[0]
	if row.Sport != "soccer" || row.Events != 1 || row.Picks != 1 || !row.Delivered || row.Trigger != "CRON" {
		t.Errorf("unexpected audit row: %+v", row)
	}
	if row.Accumulated {
		t.Error("one pick can never satisfy the accumulator minimum")
	}
}

func TestRunCycle_NothingToReport(t *testing.T) {
	s, sender, rec := newTestScheduler(nil)
	s.RunCycle(pipeline.Soccer, "CRON", false)
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "Nenhum jogo") {
		t.Fatalf("expected the no-games message, got %v", sender.sent)
	}
	if rec.cycles[0].Events != 0 {
		t.Errorf("unexpected audit row: %+v", rec.cycles[0])
	}
}

func TestHandleCommand_StatusAndHelp(t *testing.T) {
	s, _, _ := newTestScheduler(nil)
	if out := s.HandleCommand("/status"); !strings.Contains(out, "vazia") {
		t.Errorf("expected empty-cache status, got %q", out)
	}
	if out := s.HandleCommand("algo qualquer"); !strings.Contains(out, "/jogos") {
		t.Errorf("expected help text, got %q", out)
	}
}

func TestHandleCommand_CycleCommandsReplyEmpty(t *testing.T) {
	now := time.Date(2025, 5, 10, 16, 0, 0, 0, collector.RefZone)
	s, sender, _ := newTestScheduler(map[string][]collector.RawEvent{
		"league_a": {eventFixture(now)},
	})
	if out := s.HandleCommand("/jogos"); out != "" {
		t.Errorf("cycle command must deliver via the sender, not the reply: %q", out)
	}
	if len(sender.sent) == 0 {
		t.Error("expected the cycle to send messages")
	}
}
