package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"Palpiteiro/internal/collector"
	"Palpiteiro/internal/config"
	"Palpiteiro/internal/enrichment"
	"Palpiteiro/internal/health"
	"Palpiteiro/internal/notifier"
	"Palpiteiro/internal/pipeline"
	"Palpiteiro/internal/recorder"
	"Palpiteiro/internal/scheduler"
	"Palpiteiro/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] Palpiteiro starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init odds collector
	fetcher := collector.NewOddsAPIFetcher(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey, cfg.OddsAPI.Region, cfg.OddsAPI.Timeout.Std())
	col := collector.NewCollector(fetcher)
	log.Printf("[INFO] odds provider: %s", fetcher.Name())

	// Init enrichment oracle
	oracle := enrichment.NewOracle(cfg.Oracle.APIKey, cfg.Oracle.BaseURL, cfg.Oracle.Model)
	if oracle.Enabled() {
		log.Println("[INFO] enrichment oracle enabled")
	} else {
		log.Println("[INFO] enrichment oracle disabled, reports will not carry blurbs")
	}

	// Init pipeline engine
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := pipeline.NewEngine(col, oracle,
		strategy.NewAnalyzer(rng), strategy.NewBuilder(rng),
		leagues(cfg.Leagues, false), leagues(cfg.Basketball, true),
		cfg.Cache.TTL.Std(), cfg.FetchPause.Std())

	// Init Telegram notifier
	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Fatalf("[FATAL] init telegram: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, engine, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.SoccerCron, cfg.Schedule.BasketballCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Health endpoint
	hs := health.NewServer(cfg.Health.Addr)
	hs.Start()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing soccer cycle now")
		go sched.RunCycle(pipeline.Soccer, "CRON", false)
	}

	log.Println("[INFO] Palpiteiro is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	hs.Stop(shutdownCtx)

	log.Println("[INFO] Palpiteiro stopped")
}

func leagues(list []config.LeagueConfig, basketball bool) []collector.League {
	out := make([]collector.League, len(list))
	for i, lc := range list {
		out[i] = collector.League{Key: lc.Key, Name: lc.Name, Weight: lc.Weight, Basketball: basketball}
	}
	return out
}
