package transcript

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// client implements Service interface
type client struct {
	api   *openai.Client
	model string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithModel overrides the transcription model
func WithModel(m string) Option {
	return func(c *client) {
		c.model = m
	}
}

// New creates a new transcription service backed by the OpenAI audio API
func New(apiKey string, opts ...Option) (Service, error) {
	if apiKey == "" {
		return nil, goerr.New("OpenAI API key is required")
	}

	c := &client{
		api:   openai.NewClient(apiKey),
		model: openai.Whisper1,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// TranscribeAudio converts an uploaded audio file into a diarized transcript.
// The provider does not label speakers per segment, so segments carry an
// index-based speaker label; extraction works on the raw text either way.
func (c *client) TranscribeAudio(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: filename,
		Reader:   r,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: "en",
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to transcribe audio", goerr.V("filename", filename))
	}

	segments := make([]model.Segment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, model.Segment{
			Speaker: fmt.Sprintf("%d", seg.ID),
			Text:    seg.Text,
			Start:   seg.Start,
			End:     seg.End,
		})
	}

	if len(segments) == 0 {
		if resp.Text == "" {
			return nil, goerr.New("transcription returned no content", goerr.V("filename", filename))
		}
		return model.NewTranscriptFromText(resp.Text), nil
	}

	return model.NewTranscriptFromSegments(segments), nil
}
