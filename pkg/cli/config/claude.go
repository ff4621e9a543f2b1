package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/urfave/cli/v3"
)

// Claude holds configuration for the Claude LLM client used by the
// build planner
type Claude struct {
	apiKey string
}

// Flags returns CLI flags for Claude configuration
func (c *Claude) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key for build plan generation",
			Category:    "LLM",
			Sources:     cli.EnvVars("HEARSIGHT_CLAUDE_API_KEY"),
			Destination: &c.apiKey,
		},
	}
}

// LogAttrs returns log attributes for the Claude configuration (secrets hidden)
func (c *Claude) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("configured", c.apiKey != ""),
	}
}

// Configure creates a new Claude LLM client from the configured flags.
// Returns nil if the API key is not configured (build jobs will be
// unavailable).
func (c *Claude) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	client, err := claude.New(ctx, c.apiKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Claude client")
	}

	return client, nil
}
