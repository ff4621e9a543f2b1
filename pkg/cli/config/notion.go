package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/service/notiontracker"
	"github.com/urfave/cli/v3"
)

// Notion holds configuration for the Notion fallback tracker
type Notion struct {
	token      string
	databaseID string
}

// Flags returns CLI flags for Notion configuration
func (n *Notion) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-api-token",
			Usage:       "Notion API token for the fallback tracker",
			Category:    "Notion",
			Sources:     cli.EnvVars("HEARSIGHT_NOTION_API_TOKEN"),
			Destination: &n.token,
		},
		&cli.StringFlag{
			Name:        "notion-database-id",
			Usage:       "Notion database ID where fallback tickets are created",
			Category:    "Notion",
			Sources:     cli.EnvVars("HEARSIGHT_NOTION_DATABASE_ID"),
			Destination: &n.databaseID,
		},
	}
}

// LogAttrs returns log attributes for the Notion configuration (secrets hidden)
func (n *Notion) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("configured", n.token != ""),
		slog.String("database_id", n.databaseID),
	}
}

// IsConfigured returns true if both Notion flags are set
func (n *Notion) IsConfigured() bool {
	return n.token != "" && n.databaseID != ""
}

// Configure creates a new Notion tracker from the configured flags.
// Returns nil if not configured (no fallback on GitHub failure).
func (n *Notion) Configure() (notiontracker.Service, error) {
	if !n.IsConfigured() {
		return nil, nil
	}

	svc, err := notiontracker.New(n.token, n.databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Notion tracker")
	}

	return svc, nil
}
