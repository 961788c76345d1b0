package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.in); got != c.want {
			t.Fatalf("parseLogLevel(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

// clearEnv blanks every variable Load reads so the ambient environment
// cannot leak into the assertions. getEnv treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HIRESCOPE_API_URL", "HIRESCOPE_COMPARISON_URL", "HIRESCOPE_TAXONOMY_URL",
		"HIRESCOPE_FUNNEL_URL", "HIRESCOPE_METRICS_URL", "HIRESCOPE_SYNONYM_URL",
		"HIRESCOPE_ORG_ID", "HIRESCOPE_LOG_FILE", "HIRESCOPE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.ComparisonURL != DefaultAPIURL+ComparisonPath {
		t.Fatalf("ComparisonURL = %q", cfg.ComparisonURL)
	}
	if cfg.SynonymURL != DefaultAPIURL+SynonymPath {
		t.Fatalf("SynonymURL = %q", cfg.SynonymURL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v; want info", cfg.LogLevel)
	}
}

func TestLoadRootOverrideMovesEverySurface(t *testing.T) {
	clearEnv(t)
	t.Setenv("HIRESCOPE_API_URL", "http://backend:9000")

	cfg := Load()

	for name, got := range map[string]string{
		"comparison": cfg.ComparisonURL,
		"taxonomy":   cfg.TaxonomyURL,
		"funnel":     cfg.FunnelURL,
		"metrics":    cfg.MetricsURL,
		"synonym":    cfg.SynonymURL,
	} {
		if !strings.HasPrefix(got, "http://backend:9000/") {
			t.Fatalf("%s surface did not follow the root override: %q", name, got)
		}
	}
}

func TestLoadPerSurfaceOverrideWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("HIRESCOPE_API_URL", "http://backend:9000")
	t.Setenv("HIRESCOPE_FUNNEL_URL", "http://elsewhere:7000/funnel")

	cfg := Load()

	if cfg.FunnelURL != "http://elsewhere:7000/funnel" {
		t.Fatalf("FunnelURL = %q; per-surface override lost", cfg.FunnelURL)
	}
	if !strings.HasPrefix(cfg.MetricsURL, "http://backend:9000/") {
		t.Fatalf("MetricsURL = %q; root override lost", cfg.MetricsURL)
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := SetupLoggerWithWriters(&file, &stderr, slog.LevelInfo)

	logger.Info("fetch failed", "view", "funnel")
	logger.Debug("suppressed")

	var entry map[string]interface{}
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("file output is not JSON: %v (%q)", err, file.String())
	}
	if entry["msg"] != "fetch failed" || entry["view"] != "funnel" {
		t.Fatalf("file entry = %v", entry)
	}

	if !strings.Contains(stderr.String(), "fetch failed") {
		t.Fatalf("stderr output missing record: %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "suppressed") {
		t.Fatalf("debug record leaked past the info level")
	}
}
