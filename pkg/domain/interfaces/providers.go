package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Transcriber converts audio into a diarized transcript.
// Hard failures propagate to the caller.
type Transcriber interface {
	TranscribeAudio(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error)
}

// Analyzer extracts structured insights from transcript text.
// A malformed provider response is a hard failure, never partially accepted.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*model.Analysis, error)
}

// DocSearcher queries an external document search provider. Implementations
// may fail; the enrichment orchestrator absorbs errors as empty results.
type DocSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]model.DocResult, error)
}

// Summarizer turns search results plus insight context into a short
// implementation guide.
type Summarizer interface {
	Summarize(ctx context.Context, insight model.Insight, docs []model.DocResult) (string, error)
}

// IssueTracker creates one tracked work item. Two interchangeable
// implementations exist (primary and fallback).
type IssueTracker interface {
	// Name identifies the tracker in logs and error messages
	Name() string

	// CreateIssue submits the draft and returns external identifiers
	CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error)
}

// Notifier posts a best-effort batch summary after materialization
type Notifier interface {
	NotifyBatch(ctx context.Context, batch *model.BatchResult) error
}
