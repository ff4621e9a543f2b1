package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Input validation errors: rejected before any side effect
	ErrEmptyTranscript = errors.New("transcript text is required")
	ErrEmptyAudio      = errors.New("audio content is required")

	// Provider wiring errors
	ErrNoTranscriber   = errors.New("transcription provider is not configured")
	ErrNoAnalyzer      = errors.New("extraction provider is not configured")
	ErrNoBuildLLM      = errors.New("build LLM is not configured")
	ErrBuildNotFound   = errors.New("build job not found")
	ErrNoIssueTrackers = errors.New("no issue tracker is configured")
)
