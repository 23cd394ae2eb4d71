package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "2h" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// Std returns the wrapped standard duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// LeagueConfig maps one provider sport key to a display name and an
// importance weight.
type LeagueConfig struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	OddsAPI struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Region  string        `yaml:"region"`
		Timeout Duration      `yaml:"timeout"`
	} `yaml:"odds_api"`
	Oracle struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"oracle"`
	Schedule struct {
		SoccerCron     string `yaml:"soccer_cron"`
		BasketballCron string `yaml:"basketball_cron"`
	} `yaml:"schedule"`
	Cache struct {
		TTL Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Health struct {
		Addr string `yaml:"addr"`
	} `yaml:"health"`
	FetchPause Duration       `yaml:"fetch_pause"`
	Leagues    []LeagueConfig `yaml:"leagues"`
	Basketball []LeagueConfig `yaml:"basketball"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		cfg.OddsAPI.APIKey = v
	}
	if v := os.Getenv("ODDS_API_BASE_URL"); v != "" {
		cfg.OddsAPI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Oracle.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HEALTH_ADDR"); v != "" {
		cfg.Health.Addr = v
	}

	// Defaults
	if cfg.OddsAPI.BaseURL == "" {
		cfg.OddsAPI.BaseURL = "https://api.the-odds-api.com"
	}
	if cfg.OddsAPI.Region == "" {
		cfg.OddsAPI.Region = "eu"
	}
	if cfg.OddsAPI.Timeout == 0 {
		cfg.OddsAPI.Timeout = Duration(15 * time.Second)
	}
	if cfg.Schedule.SoccerCron == "" {
		cfg.Schedule.SoccerCron = "0 0 9 * * *"
	}
	if cfg.Schedule.BasketballCron == "" {
		cfg.Schedule.BasketballCron = "0 30 9 * * *"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = Duration(2 * time.Hour)
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/palpiteiro.db"
	}
	if cfg.Health.Addr == "" {
		cfg.Health.Addr = ":8080"
	}
	if cfg.FetchPause == 0 {
		cfg.FetchPause = Duration(time.Second)
	}
	if len(cfg.Leagues) == 0 {
		cfg.Leagues = []LeagueConfig{
			{Key: "soccer_brazil_campeonato", Name: "Brasileirão", Weight: 10},
			{Key: "soccer_conmebol_copa_libertadores", Name: "Libertadores", Weight: 9},
			{Key: "soccer_epl", Name: "Premier League", Weight: 8},
			{Key: "soccer_spain_la_liga", Name: "La Liga", Weight: 8},
			{Key: "soccer_uefa_champs_league", Name: "Champions League", Weight: 10},
		}
	}
	if len(cfg.Basketball) == 0 {
		cfg.Basketball = []LeagueConfig{
			{Key: "basketball_nba", Name: "NBA", Weight: 8},
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.OddsAPI.APIKey == "" {
		return fmt.Errorf("odds_api.api_key is required")
	}
	return nil
}
