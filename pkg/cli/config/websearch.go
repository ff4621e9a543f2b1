package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/service/websearch"
	"github.com/urfave/cli/v3"
)

// WebSearch holds configuration for the documentation search client
type WebSearch struct {
	apiKey  string
	baseURL string
}

// Flags returns CLI flags for web search configuration
func (w *WebSearch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "websearch-api-key",
			Usage:       "API key for the documentation search backend",
			Category:    "Enrichment",
			Sources:     cli.EnvVars("HEARSIGHT_WEBSEARCH_API_KEY"),
			Destination: &w.apiKey,
		},
		&cli.StringFlag{
			Name:        "websearch-base-url",
			Usage:       "Override the documentation search endpoint",
			Category:    "Enrichment",
			Sources:     cli.EnvVars("HEARSIGHT_WEBSEARCH_BASE_URL"),
			Destination: &w.baseURL,
		},
	}
}

// LogAttrs returns log attributes for the web search configuration (secrets hidden)
func (w *WebSearch) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("configured", w.apiKey != ""),
	}
}

// Configure creates a new documentation search service from the configured
// flags. Returns nil if the API key is not configured (insights are
// materialized without documentation links).
func (w *WebSearch) Configure() (websearch.Service, error) {
	if w.apiKey == "" {
		return nil, nil
	}

	var opts []websearch.Option
	if w.baseURL != "" {
		opts = append(opts, websearch.WithBaseURL(w.baseURL))
	}

	svc, err := websearch.New(w.apiKey, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create web search service")
	}

	return svc, nil
}
