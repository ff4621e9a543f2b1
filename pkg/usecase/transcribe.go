package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// TranscribeAudio converts uploaded audio into a diarized transcript.
// Provider failures are hard errors and propagate to the caller.
func (uc *UseCases) TranscribeAudio(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error) {
	if uc.transcriber == nil {
		return nil, ErrNoTranscriber
	}
	if r == nil {
		return nil, ErrEmptyAudio
	}

	result, err := uc.transcriber.TranscribeAudio(ctx, filename, r)
	if err != nil {
		return nil, goerr.Wrap(err, "transcription failed", goerr.V("filename", filename))
	}

	return result, nil
}

// TranscribeText accepts pasted transcript text. Fallback when audio is
// unavailable.
func (uc *UseCases) TranscribeText(ctx context.Context, text string) (*model.Transcript, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTranscript
	}

	return model.NewTranscriptFromText(text), nil
}
