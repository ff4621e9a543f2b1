package model

import (
	"fmt"
	"strings"
)

// Segment is one diarized utterance of a transcript
type Segment struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// Transcript is the output of the transcription stage
type Transcript struct {
	Segments []Segment `json:"segments"`
	RawText  string    `json:"raw_text"`
}

// NewTranscriptFromSegments builds a transcript with the concatenated raw
// text derived from its segments
func NewTranscriptFromSegments(segments []Segment) *Transcript {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("Speaker %s: %s", s.Speaker, s.Text))
	}
	return &Transcript{
		Segments: segments,
		RawText:  strings.Join(lines, "\n"),
	}
}

// NewTranscriptFromText wraps pasted transcript text as a single segment
// with an unknown speaker. Used when audio is unavailable.
func NewTranscriptFromText(text string) *Transcript {
	return &Transcript{
		Segments: []Segment{{Speaker: "unknown", Text: text}},
		RawText:  text,
	}
}
