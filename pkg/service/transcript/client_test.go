package transcript_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/service/transcript"
)

func TestNew_Validation(t *testing.T) {
	_, err := transcript.New("")
	gt.Error(t, err)

	_, err = transcript.New("sk-test", transcript.WithModel("whisper-1"))
	gt.NoError(t, err)
}

func TestTranscribeAudio_WithRealWhisper(t *testing.T) {
	apiKey := os.Getenv("TEST_OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("TEST_OPENAI_API_KEY not set")
	}
	audioPath := os.Getenv("TEST_AUDIO_FILE")
	if audioPath == "" {
		t.Skip("TEST_AUDIO_FILE not set")
	}

	svc, err := transcript.New(apiKey)
	gt.NoError(t, err).Required()

	f, err := os.Open(audioPath)
	gt.NoError(t, err).Required()
	defer func() { _ = f.Close() }()

	result, err := svc.TranscribeAudio(context.Background(), audioPath, f)
	gt.NoError(t, err).Required()
	gt.Value(t, result.RawText).NotEqual("")
	gt.Bool(t, len(result.Segments) > 0).True()
}
