package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OddsAPI.BaseURL != "https://api.the-odds-api.com" {
		t.Errorf("unexpected default base URL: %s", cfg.OddsAPI.BaseURL)
	}
	if cfg.Cache.TTL.Std() != 2*time.Hour {
		t.Errorf("unexpected default TTL: %v", cfg.Cache.TTL)
	}
	if len(cfg.Leagues) == 0 || len(cfg.Basketball) == 0 {
		t.Error("expected default league tables")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
telegram:
  bot_token: from-file
  chat_id: 123
odds_api:
  api_key: file-key
cache:
  ttl: 30m
leagues:
  - key: soccer_epl
    name: Premier League
    weight: 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ODDS_API_KEY", "env-key")
	t.Setenv("TELEGRAM_CHAT_ID", "456")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "from-file" {
		t.Errorf("expected file value, got %q", cfg.Telegram.BotToken)
	}
	if cfg.OddsAPI.APIKey != "env-key" {
		t.Errorf("env must override file, got %q", cfg.OddsAPI.APIKey)
	}
	if cfg.Telegram.ChatID != 456 {
		t.Errorf("env must override chat id, got %d", cfg.Telegram.ChatID)
	}
	if cfg.Cache.TTL.Std() != 30*time.Minute {
		t.Errorf("expected 30m TTL from file, got %v", cfg.Cache.TTL)
	}
	if len(cfg.Leagues) != 1 || cfg.Leagues[0].Weight != 7 {
		t.Errorf("unexpected leagues: %+v", cfg.Leagues)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without credentials")
	}
	cfg.Telegram.BotToken = "t"
	cfg.Telegram.ChatID = 1
	cfg.OddsAPI.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
