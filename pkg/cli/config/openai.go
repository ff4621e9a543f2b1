package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/service/transcript"
	"github.com/urfave/cli/v3"
)

// OpenAI holds configuration for the Whisper transcription client
type OpenAI struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key for Whisper audio transcription",
			Category:    "Transcription",
			Sources:     cli.EnvVars("HEARSIGHT_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-whisper-model",
			Usage:       "Whisper model for audio transcription",
			Category:    "Transcription",
			Value:       "whisper-1",
			Sources:     cli.EnvVars("HEARSIGHT_OPENAI_WHISPER_MODEL"),
			Destination: &o.model,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration (secrets hidden)
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("configured", o.apiKey != ""),
		slog.String("model", o.model),
	}
}

// Configure creates a new transcription service from the configured flags.
// Returns nil if the API key is not configured (audio upload will be
// unavailable, pasted text still works).
func (o *OpenAI) Configure() (transcript.Service, error) {
	if o.apiKey == "" {
		return nil, nil
	}

	svc, err := transcript.New(o.apiKey, transcript.WithModel(o.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create transcription service")
	}

	return svc, nil
}
