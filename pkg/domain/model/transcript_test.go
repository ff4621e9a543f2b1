package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

func TestNewTranscriptFromSegments(t *testing.T) {
	tr := model.NewTranscriptFromSegments([]model.Segment{
		{Speaker: "A", Text: "The export takes forever", Start: 0, End: 3.2},
		{Speaker: "B", Text: "How long exactly?", Start: 3.2, End: 4.5},
	})

	gt.Array(t, tr.Segments).Length(2)
	gt.Value(t, tr.RawText).Equal("Speaker A: The export takes forever\nSpeaker B: How long exactly?")
}

func TestNewTranscriptFromText(t *testing.T) {
	tr := model.NewTranscriptFromText("raw pasted transcript")

	gt.Value(t, tr.RawText).Equal("raw pasted transcript")
	gt.Array(t, tr.Segments).Length(1)
	gt.Value(t, tr.Segments[0].Speaker).Equal("unknown")
	gt.Value(t, tr.Segments[0].Text).Equal("raw pasted transcript")
}
