// Package config provides application configuration structures and helpers.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// MaxBatchLimit is the largest number of hits the analytics batch endpoint accepts per request.
	MaxBatchLimit = 20
	// MaxWindowDays caps the date window; each day costs two concurrent requests per bot.
	MaxWindowDays = 30

	defaultLineAPIBase   = "https://api.line.me"
	defaultBatchEndpoint = "https://www.google-analytics.com/batch"
	defaultWindowDays    = 3
)

// InsightConfig holds the configuration settings for one insight run.
type InsightConfig struct {
	BotsCSV       string        // URL of the bot roster CSV
	LineAPIBase   string        // Messaging API base URL
	BatchEndpoint string        // Analytics batch endpoint
	BatchLimit    int           // Hits per batch request
	WindowDays    int           // Number of trailing dates to query
	ClientTimeout time.Duration // HTTP client timeout, 0 means no timeout
	LogLevel      string        // zap level name
	Logger        *zap.SugaredLogger
}

// Default returns a config populated with defaults only.
func Default() *InsightConfig {
	return &InsightConfig{
		LineAPIBase:   defaultLineAPIBase,
		BatchEndpoint: defaultBatchEndpoint,
		BatchLimit:    MaxBatchLimit,
		WindowDays:    defaultWindowDays,
		LogLevel:      "info",
	}
}

// NewInsightConfig builds the configuration from defaults, an optional config file
// named by CONFIG, a .env file and the environment, in that order of precedence.
// An unreadable config file is logged and skipped; only a bad log level is an error.
func NewInsightConfig() (*InsightConfig, error) {
	_ = godotenv.Load()

	cfg := Default()

	var warnings []string
	if path := os.Getenv("CONFIG"); path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			warnings = append(warnings, fmt.Sprintf("config file ignored: %v", err))
		}
	}

	warnings = append(warnings, readEnvironment(cfg)...)
	normalize(cfg)

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	for _, w := range warnings {
		logger.Warn(w)
	}

	return cfg, nil
}

// NewLogger builds a production zap logger writing to stdout at the given level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stdout"}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

func readEnvironment(cfg *InsightConfig) []string {
	var warnings []string

	if v := os.Getenv("BOTS_CSV"); v != "" {
		cfg.BotsCSV = v
	}
	if v := os.Getenv("LINE_API_BASE"); v != "" {
		cfg.LineAPIBase = v
	}
	if v := os.Getenv("GA_BATCH_ENDPOINT"); v != "" {
		cfg.BatchEndpoint = v
	}

	if v := os.Getenv("BATCH_LIMIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.BatchLimit = i
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid BATCH_LIMIT env var: %v", err))
		}
	}

	if v := os.Getenv("WINDOW_DAYS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.WindowDays = i
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid WINDOW_DAYS env var: %v", err))
		}
	}

	if v := os.Getenv("CLIENT_TIMEOUT"); v != "" {
		if d, err := parseTimeout(v); err == nil {
			cfg.ClientTimeout = d
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid CLIENT_TIMEOUT env var: %v", err))
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return warnings
}

// parseTimeout accepts a Go duration ("10s") or a plain number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	sec, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return time.Duration(sec) * time.Second, nil
}

func normalize(cfg *InsightConfig) {
	if cfg.BatchLimit < 1 || cfg.BatchLimit > MaxBatchLimit {
		cfg.BatchLimit = MaxBatchLimit
	}
	if cfg.WindowDays < 1 {
		cfg.WindowDays = defaultWindowDays
	}
	if cfg.WindowDays > MaxWindowDays {
		cfg.WindowDays = MaxWindowDays
	}
	if cfg.ClientTimeout < 0 {
		cfg.ClientTimeout = 0
	}
	cfg.LineAPIBase = strings.TrimRight(cfg.LineAPIBase, "/")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
