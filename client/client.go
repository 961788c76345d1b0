// Package client is a typed HTTP client for the recruiting-analytics
// backend: multi-resume comparison, taxonomy analytics, hiring funnel,
// key metrics, and skill synonym management.
package client

import (
	"net/http"
	"time"

	"hirescope/config"
)

// Config holds the per-surface base URLs. Zero fields fall back to the
// documented defaults so callers only override what they need.
type Config struct {
	ComparisonURL string
	TaxonomyURL   string
	FunnelURL     string
	MetricsURL    string
	SynonymURL    string
	Timeout       time.Duration
}

// Client talks to the recruiting-analytics backend.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a client. Empty config fields are filled from the defaults in
// the config package.
func New(cfg Config) *Client {
	if cfg.ComparisonURL == "" {
		cfg.ComparisonURL = config.DefaultAPIURL + config.ComparisonPath
	}
	if cfg.TaxonomyURL == "" {
		cfg.TaxonomyURL = config.DefaultAPIURL + config.TaxonomyPath
	}
	if cfg.FunnelURL == "" {
		cfg.FunnelURL = config.DefaultAPIURL + config.FunnelPath
	}
	if cfg.MetricsURL == "" {
		cfg.MetricsURL = config.DefaultAPIURL + config.MetricsPath
	}
	if cfg.SynonymURL == "" {
		cfg.SynonymURL = config.DefaultAPIURL + config.SynonymPath
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.RequestTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// FromAppConfig builds a client Config from the loaded application config.
func FromAppConfig(app config.Config) Config {
	return Config{
		ComparisonURL: app.ComparisonURL,
		TaxonomyURL:   app.TaxonomyURL,
		FunnelURL:     app.FunnelURL,
		MetricsURL:    app.MetricsURL,
		SynonymURL:    app.SynonymURL,
	}
}
