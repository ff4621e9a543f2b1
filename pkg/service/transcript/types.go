package transcript

import (
	"context"
	"io"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Service provides interface to the speech-to-text provider
type Service interface {
	// TranscribeAudio converts an uploaded audio file into a diarized transcript
	TranscribeAudio(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error)
}

// MaxAudioBytes is the upper bound of an uploaded audio file (25 MB)
const MaxAudioBytes = 25 * 1024 * 1024
