package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// Backend endpoints
	ComparisonURL string
	TaxonomyURL   string
	FunnelURL     string
	MetricsURL    string
	SynonymURL    string

	// Default organization for synonym management
	OrganizationID string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables. A single
// HIRESCOPE_API_URL moves every surface at once; per-surface variables
// override individually.
func Load() Config {
	root := getEnv("HIRESCOPE_API_URL", DefaultAPIURL)

	return Config{
		ComparisonURL: getEnv("HIRESCOPE_COMPARISON_URL", root+ComparisonPath),
		TaxonomyURL:   getEnv("HIRESCOPE_TAXONOMY_URL", root+TaxonomyPath),
		FunnelURL:     getEnv("HIRESCOPE_FUNNEL_URL", root+FunnelPath),
		MetricsURL:    getEnv("HIRESCOPE_METRICS_URL", root+MetricsPath),
		SynonymURL:    getEnv("HIRESCOPE_SYNONYM_URL", root+SynonymPath),

		OrganizationID: getEnv("HIRESCOPE_ORG_ID", ""),

		LogFile:  getEnv("HIRESCOPE_LOG_FILE", "/tmp/hirescope.log"),
		LogLevel: parseLogLevel(getEnv("HIRESCOPE_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
