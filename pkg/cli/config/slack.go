package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/service/slacknotify"
	"github.com/urfave/cli/v3"
)

// Slack holds configuration for batch summary notifications
type Slack struct {
	botToken string
	channel  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token for batch notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("HEARSIGHT_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for batch summary notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("HEARSIGHT_SLACK_CHANNEL"),
			Destination: &s.channel,
		},
	}
}

func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(s.botToken)),
		slog.String("channel", s.channel),
	)
}

// IsConfigured returns true if both Slack flags are set
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channel != ""
}

// Configure creates a new Slack notifier from the configured flags.
// Returns nil if not configured (batch summaries are only logged).
func (s *Slack) Configure() (slacknotify.Service, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	svc, err := slacknotify.New(s.botToken, s.channel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack notifier")
	}

	return svc, nil
}
