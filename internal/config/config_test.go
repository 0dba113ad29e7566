package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setEnvAndRun(t *testing.T, env map[string]string, fn func()) {
	t.Helper()

	backup := map[string]string{}
	for k := range env {
		if old, ok := os.LookupEnv(k); ok {
			backup[k] = old
		}
	}

	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
	defer func() {
		for k := range env {
			_ = os.Unsetenv(k)
			if old, ok := backup[k]; ok {
				_ = os.Setenv(k, old)
			}
		}
	}()

	fn()
}

func TestReadEnvironment(t *testing.T) {
	env := map[string]string{
		"BOTS_CSV":          "https://example.com/bots.csv",
		"LINE_API_BASE":     "http://127.0.0.1:9999/",
		"GA_BATCH_ENDPOINT": "http://127.0.0.1:9998/batch",
		"BATCH_LIMIT":       "10",
		"WINDOW_DAYS":       "5",
		"CLIENT_TIMEOUT":    "15",
		"LOG_LEVEL":         "debug",
	}

	setEnvAndRun(t, env, func() {
		cfg := Default()
		warnings := readEnvironment(cfg)
		normalize(cfg)

		require.Empty(t, warnings)
		require.Equal(t, "https://example.com/bots.csv", cfg.BotsCSV)
		require.Equal(t, "http://127.0.0.1:9999", cfg.LineAPIBase)
		require.Equal(t, "http://127.0.0.1:9998/batch", cfg.BatchEndpoint)
		require.Equal(t, 10, cfg.BatchLimit)
		require.Equal(t, 5, cfg.WindowDays)
		require.Equal(t, 15*time.Second, cfg.ClientTimeout)
		require.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestReadEnvironment_InvalidValues(t *testing.T) {
	env := map[string]string{
		"BATCH_LIMIT":    "many",
		"WINDOW_DAYS":    "x",
		"CLIENT_TIMEOUT": "soon",
	}

	setEnvAndRun(t, env, func() {
		cfg := Default()
		warnings := readEnvironment(cfg)

		require.Len(t, warnings, 3)
		require.Equal(t, MaxBatchLimit, cfg.BatchLimit)
		require.Equal(t, defaultWindowDays, cfg.WindowDays)
		require.Zero(t, cfg.ClientTimeout)
	})
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name       string
		batchLimit int
		window     int
		wantBatch  int
		wantWindow int
	}{
		{"in range", 5, 2, 5, 2},
		{"too large batch", 50, 3, MaxBatchLimit, 3},
		{"zero batch", 0, 3, MaxBatchLimit, 3},
		{"zero window", 20, 0, 20, defaultWindowDays},
		{"huge window", 20, 100000, 20, MaxWindowDays},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.BatchLimit = tc.batchLimit
			cfg.WindowDays = tc.window
			normalize(cfg)
			require.Equal(t, tc.wantBatch, cfg.BatchLimit)
			require.Equal(t, tc.wantWindow, cfg.WindowDays)
		})
	}
}

func TestParseTimeout(t *testing.T) {
	d, err := parseTimeout("1500ms")
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, d)

	d, err = parseTimeout("3")
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, d)

	_, err = parseTimeout("abc")
	require.Error(t, err)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insight.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"bots_csv": "https://example.com/roster.csv",
		"batch_limit": 7,
		"window_days": 2,
		"client_timeout": "2s"
	}`), 0o600))

	cfg := Default()
	require.NoError(t, loadConfigFile(path, cfg))
	require.Equal(t, "https://example.com/roster.csv", cfg.BotsCSV)
	require.Equal(t, 7, cfg.BatchLimit)
	require.Equal(t, 2, cfg.WindowDays)
	require.Equal(t, 2*time.Second, cfg.ClientTimeout)
	require.Equal(t, defaultBatchEndpoint, cfg.BatchEndpoint)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bots_csv: https://example.com/y.csv\nlog_level: warn\n"), 0o600))

	cfg := Default()
	require.NoError(t, loadConfigFile(path, cfg))
	require.Equal(t, "https://example.com/y.csv", cfg.BotsCSV)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	cfg := Default()
	err := loadConfigFile(filepath.Join(t.TempDir(), "nope.json"), cfg)
	require.Error(t, err)
}

func TestNewInsightConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insight.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bots_csv": "https://file/roster.csv", "window_days": 4}`), 0o600))

	env := map[string]string{
		"CONFIG":    path,
		"BOTS_CSV":  "https://env/roster.csv",
		"LOG_LEVEL": "error",
	}
	setEnvAndRun(t, env, func() {
		cfg, err := NewInsightConfig()
		require.NoError(t, err)
		require.Equal(t, "https://env/roster.csv", cfg.BotsCSV)
		require.Equal(t, 4, cfg.WindowDays)
		require.NotNil(t, cfg.Logger)
	})
}

func TestNewInsightConfig_MissingFileIsIgnored(t *testing.T) {
	env := map[string]string{
		"CONFIG":   filepath.Join(t.TempDir(), "absent.yaml"),
		"BOTS_CSV": "https://env/roster.csv",
	}
	setEnvAndRun(t, env, func() {
		cfg, err := NewInsightConfig()
		require.NoError(t, err)
		require.Equal(t, "https://env/roster.csv", cfg.BotsCSV)
		require.Equal(t, defaultBatchEndpoint, cfg.BatchEndpoint)
	})
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger("loud")
	require.Error(t, err)
}
