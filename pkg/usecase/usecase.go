package usecase

import (
	"time"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hearsight/pkg/domain/interfaces"
)

const (
	// DefaultEnrichConcurrency caps the enrichment fan-out. Batch sizes are
	// single-digit to low tens, so a small cap bounds provider pressure
	// without serializing the batch.
	DefaultEnrichConcurrency = 8

	// DefaultCallTimeout bounds every external enrichment call so the
	// worst-case batch latency tracks the slowest single branch.
	DefaultCallTimeout = 10 * time.Second
)

// UseCases wires the pipeline stages to their external providers. All
// providers are injected; absent optional providers degrade the matching
// stage instead of failing it.
type UseCases struct {
	transcriber interfaces.Transcriber
	analyzer    interfaces.Analyzer
	searcher    interfaces.DocSearcher
	summarizer  interfaces.Summarizer
	primary     interfaces.IssueTracker
	fallback    interfaces.IssueTracker
	notifier    interfaces.Notifier

	buildLLM gollem.LLMClient
	builds   *buildStore

	concurrency int
	callTimeout time.Duration
	extraLabels []string
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithTranscriber sets the speech-to-text provider
func WithTranscriber(t interfaces.Transcriber) Option {
	return func(uc *UseCases) {
		uc.transcriber = t
	}
}

// WithAnalyzer sets the structured extraction provider
func WithAnalyzer(a interfaces.Analyzer) Option {
	return func(uc *UseCases) {
		uc.analyzer = a
	}
}

// WithSearcher sets the document search provider
func WithSearcher(s interfaces.DocSearcher) Option {
	return func(uc *UseCases) {
		uc.searcher = s
	}
}

// WithSummarizer sets the implementation guide provider
func WithSummarizer(s interfaces.Summarizer) Option {
	return func(uc *UseCases) {
		uc.summarizer = s
	}
}

// WithPrimaryTracker sets the primary issue tracker
func WithPrimaryTracker(t interfaces.IssueTracker) Option {
	return func(uc *UseCases) {
		uc.primary = t
	}
}

// WithFallbackTracker sets the fallback issue tracker
func WithFallbackTracker(t interfaces.IssueTracker) Option {
	return func(uc *UseCases) {
		uc.fallback = t
	}
}

// WithNotifier sets the batch summary notifier
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithBuildLLM sets the LLM client used by background build jobs
func WithBuildLLM(c gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.buildLLM = c
	}
}

// WithEnrichConcurrency overrides the enrichment fan-out cap
func WithEnrichConcurrency(n int) Option {
	return func(uc *UseCases) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// WithCallTimeout overrides the per-call timeout for enrichment providers
func WithCallTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		if d > 0 {
			uc.callTimeout = d
		}
	}
}

// WithExtraLabels appends fixed labels to every created issue
func WithExtraLabels(labels []string) Option {
	return func(uc *UseCases) {
		uc.extraLabels = labels
	}
}

// New creates UseCases with the given providers
func New(opts ...Option) *UseCases {
	uc := &UseCases{
		builds:      newBuildStore(),
		concurrency: DefaultEnrichConcurrency,
		callTimeout: DefaultCallTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// HasFallbackTracker reports whether a fallback tracker is configured
func (uc *UseCases) HasFallbackTracker() bool {
	return uc.fallback != nil
}
