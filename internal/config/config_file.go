package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// loadConfigFile overlays values from a JSON or YAML file onto cfg.
// Keys absent from the file leave cfg untouched.
func loadConfigFile(path string, cfg *InsightConfig) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if v.IsSet("bots_csv") {
		cfg.BotsCSV = v.GetString("bots_csv")
	}
	if v.IsSet("line_api_base") {
		cfg.LineAPIBase = v.GetString("line_api_base")
	}
	if v.IsSet("batch_endpoint") {
		cfg.BatchEndpoint = v.GetString("batch_endpoint")
	}
	if v.IsSet("batch_limit") {
		cfg.BatchLimit = v.GetInt("batch_limit")
	}
	if v.IsSet("window_days") {
		cfg.WindowDays = v.GetInt("window_days")
	}
	if v.IsSet("client_timeout") {
		d, err := parseTimeout(v.GetString("client_timeout"))
		if err != nil {
			return fmt.Errorf("client_timeout: %w", err)
		}
		cfg.ClientTimeout = d
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	return nil
}
