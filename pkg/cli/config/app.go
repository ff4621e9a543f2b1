package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the pipeline policy configuration loaded from a
// TOML file. All fields are optional; zero values keep the built-in
// defaults.
type AppConfig struct {
	Issue      IssuePolicy      `toml:"issue"`
	Enrichment EnrichmentPolicy `toml:"enrichment"`

	path string
}

// IssuePolicy configures issue materialization
type IssuePolicy struct {
	ExtraLabels []string `toml:"extra_labels"`
}

// EnrichmentPolicy configures the enrichment fan-out
type EnrichmentPolicy struct {
	Concurrency    int `toml:"concurrency"`
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Flags returns CLI flags for the application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the pipeline policy TOML file",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("HEARSIGHT_CONFIG"),
			Destination: &a.path,
		},
	}
}

// LogAttrs returns log attributes for the application configuration
func (a *AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("path", a.path),
		slog.Any("extra_labels", a.Issue.ExtraLabels),
		slog.Int("enrich_concurrency", a.Enrichment.Concurrency),
		slog.Int("enrich_timeout_seconds", a.Enrichment.TimeoutSeconds),
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, label := range a.Issue.ExtraLabels {
		if label == "" {
			return goerr.Wrap(ErrInvalidConfig, "extra label must not be empty")
		}
		if seen[label] {
			return goerr.Wrap(ErrInvalidConfig, "duplicate extra label", goerr.V("label", label))
		}
		seen[label] = true
	}

	if a.Enrichment.Concurrency < 0 {
		return goerr.Wrap(ErrInvalidConfig, "enrichment concurrency must not be negative", goerr.V("concurrency", a.Enrichment.Concurrency))
	}
	if a.Enrichment.TimeoutSeconds < 0 {
		return goerr.Wrap(ErrInvalidConfig, "enrichment timeout must not be negative", goerr.V("timeout_seconds", a.Enrichment.TimeoutSeconds))
	}

	return nil
}

// Timeout returns the configured per-call timeout, or zero when unset
func (a *AppConfig) Timeout() time.Duration {
	return time.Duration(a.Enrichment.TimeoutSeconds) * time.Second
}

// Configure loads and validates the TOML file named by the --config flag.
// Without a path, the defaults stay in place.
func (a *AppConfig) Configure() error {
	if a.path == "" {
		return nil
	}

	if err := LoadAppConfiguration(a.path, a); err != nil {
		return err
	}

	return nil
}

// LoadAppConfiguration loads a pipeline policy configuration from a TOML file
func LoadAppConfiguration(path string, config *AppConfig) error {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return nil
}
