package scheduler

import (
	"context"
	"fmt"
	"log"

	"Palpiteiro/internal/notifier"
	"Palpiteiro/internal/pipeline"
	"Palpiteiro/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Sender delivers one outbound message. Satisfied by the Telegram
// notifier; tests plug a fake.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler owns the cron triggers and the bot command surface, both
// of which drive the same pipeline engine.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *pipeline.Engine
	Sender   Sender
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, engine *pipeline.Engine, sender Sender, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   engine,
		Sender:   sender,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily soccer and basketball cycles.
func (s *Scheduler) RegisterAll(soccerCron, basketballCron string) error {
	if _, err := s.Cron.AddFunc(soccerCron, func() {
		s.RunCycle(pipeline.Soccer, "CRON", false)
	}); err != nil {
		return fmt.Errorf("register soccer task: %w", err)
	}
	if _, err := s.Cron.AddFunc(basketballCron, func() {
		s.RunCycle(pipeline.Basketball, "CRON", false)
	}); err != nil {
		return fmt.Errorf("register basketball task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunCycle executes one full grade cycle and delivers its output.
func (s *Scheduler) RunCycle(sport pipeline.Sport, trigger string, force bool) {
	log.Printf("[INFO] running %s cycle (%s)", sport, trigger)
	report := s.Engine.Run(s.Ctx, sport, force)

	delivered := false
	if report.Empty() {
		delivered = s.trySend(notifier.MsgNoGames)
	} else {
		delivered = s.trySend(notifier.FormatDailyReport(sport, report.Groups))
		s.trySend(notifier.FormatAccumulator(report.Accumulator))
	}

	vip := 0
	for _, ev := range report.Events {
		if ev.VIP {
			vip++
		}
	}
	rec := &recorder.CycleRecord{
		Sport:     sport.String(),
		Events:    len(report.Events),
		VIPEvents: vip,
		Picks:     len(report.Picks),
		Delivered: delivered,
		Trigger:   trigger,
	}
	if report.Accumulator != nil {
		rec.Accumulated = true
		rec.Product = report.Accumulator.Product
	}
	if err := s.Recorder.RecordCycle(rec); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/jogos":
		s.RunCycle(pipeline.Soccer, "COMMAND", false)
		return ""
	case "/nba":
		s.RunCycle(pipeline.Basketball, "COMMAND", false)
		return ""
	case "/multipla":
		report := s.Engine.Run(s.Ctx, pipeline.Soccer, false)
		if report.Empty() {
			return notifier.MsgNoGames
		}
		return notifier.FormatAccumulator(report.Accumulator)
	case "/atualizar":
		s.Engine.Invalidate(pipeline.Soccer)
		s.Engine.Invalidate(pipeline.Basketball)
		s.RunCycle(pipeline.Soccer, "FORCED", false)
		return ""
	case "/status":
		soccerAge, soccerOK := s.Engine.CacheAge(pipeline.Soccer)
		basketAge, basketOK := s.Engine.CacheAge(pipeline.Basketball)
		return notifier.FormatStatus(soccerAge, basketAge, soccerOK, basketOK)
	default:
		return "Comandos:\n• /jogos — grade de futebol\n• /nba — grade de basquete\n• /multipla — múltipla do dia\n• /atualizar — forçar atualização\n• /status — estado do cache"
	}
}

func (s *Scheduler) trySend(text string) bool {
	if err := s.Sender.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
		return false
	}
	return true
}
