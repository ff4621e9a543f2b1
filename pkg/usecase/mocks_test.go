package usecase_test

import (
	"context"
	"io"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

// mockTranscriber is a mock implementation of interfaces.Transcriber
type mockTranscriber struct {
	transcribeFn func(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error)
}

func (m *mockTranscriber) TranscribeAudio(ctx context.Context, filename string, r io.Reader) (*model.Transcript, error) {
	if m.transcribeFn != nil {
		return m.transcribeFn(ctx, filename, r)
	}
	return model.NewTranscriptFromText("mock transcript"), nil
}

// mockAnalyzer is a mock implementation of interfaces.Analyzer
type mockAnalyzer struct {
	analyzeFn func(ctx context.Context, transcript string) (*model.Analysis, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, transcript string) (*model.Analysis, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, transcript)
	}
	return &model.Analysis{}, nil
}

// mockSearcher is a mock implementation of interfaces.DocSearcher
type mockSearcher struct {
	searchFn func(ctx context.Context, query string, limit int) ([]model.DocResult, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit int) ([]model.DocResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

// mockSummarizer is a mock implementation of interfaces.Summarizer
type mockSummarizer struct {
	summarizeFn func(ctx context.Context, insight model.Insight, docs []model.DocResult) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, insight model.Insight, docs []model.DocResult) (string, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, insight, docs)
	}
	return "", nil
}

// mockTracker is a mock implementation of interfaces.IssueTracker
type mockTracker struct {
	name     string
	createFn func(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error)
	drafts   []*model.IssueDraft
}

func (m *mockTracker) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockTracker) CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error) {
	m.drafts = append(m.drafts, draft)
	if m.createFn != nil {
		return m.createFn(ctx, draft)
	}
	return &model.IssueRef{URL: "https://example.com/issues/1", Number: 1}, nil
}

// mockNotifier is a mock implementation of interfaces.Notifier
type mockNotifier struct {
	notifyFn func(ctx context.Context, batch *model.BatchResult) error
	batches  []*model.BatchResult
}

func (m *mockNotifier) NotifyBatch(ctx context.Context, batch *model.BatchResult) error {
	m.batches = append(m.batches, batch)
	if m.notifyFn != nil {
		return m.notifyFn(ctx, batch)
	}
	return nil
}

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"mock plan"}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func testInsight(id string, severity types.Severity) model.Insight {
	return model.Insight{
		ID:              types.InsightID(id),
		Category:        types.CategoryPainPoint,
		Title:           "Export is slow",
		Description:     "exporting large reports takes minutes",
		Severity:        severity,
		EvidenceQuote:   "I waited five minutes for the export",
		Speaker:         "A",
		SuggestedAction: "Stream the export instead of buffering it",
		DocSearchQuery:  "streaming csv export",
	}
}
