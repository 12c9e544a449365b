package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Application configuration
	Port        string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath      string `long:"db-path" env:"DB_PATH" default:"./data/dailydash.db" description:"Path to the snapshot database file"`
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file with supplementary RSS news sources (optional)"`

	// Provider configuration
	NewsAPIKey   string `long:"news-api-key" env:"NEWS_API_KEY" description:"newsdata.io API key"`
	TMDBAPIKey   string `long:"tmdb-api-key" env:"TMDB_API_KEY" description:"TMDB API key"`
	NewsLanguage string `long:"news-language" env:"NEWS_LANGUAGE" default:"en" description:"Language parameter for news queries"`

	// Scheduling configuration
	RefreshInterval  int `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"900" description:"Content refresh interval in seconds"`
	WorkerCount      int `long:"worker-count" env:"WORKER_COUNT" default:"3" description:"Number of background workers for refresh tasks"`
	SearchDebounceMs int `long:"search-debounce" env:"SEARCH_DEBOUNCE" default:"300" description:"Search input debounce window in milliseconds"`

	// Application metadata
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for mutating endpoints (optional)"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"DailyDash/1.0" description:"User agent string for provider requests"`
	Timezone     string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug        bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:             raw.Port,
		DBPath:           raw.DBPath,
		SourcesFile:      raw.SourcesFile,
		NewsAPIKey:       raw.NewsAPIKey,
		TMDBAPIKey:       raw.TMDBAPIKey,
		NewsLanguage:     raw.NewsLanguage,
		RefreshInterval:  raw.RefreshInterval,
		WorkerCount:      raw.WorkerCount,
		SearchDebounceMs: raw.SearchDebounceMs,
		APIAccessKey:     raw.APIAccessKey,
		UserAgent:        raw.UserAgent,
		Timezone:         raw.Timezone,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
