package analysis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/service/analysis"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"{}"}}, nil
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

func respondWith(payload any) *mockLLMClient {
	data, _ := json.Marshal(payload)
	return &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{string(data)}}, nil
				},
			}, nil
		},
	}
}

func validPayload() map[string]any {
	return map[string]any{
		"product_context": "reporting tool",
		"insights": []map[string]any{
			{
				"id":               "insight-001",
				"category":         "pain_point",
				"title":            "Export is slow",
				"description":      "exporting large reports takes minutes",
				"severity":         "high",
				"evidence_quote":   "I waited five minutes",
				"speaker":          "A",
				"suggested_action": "Stream the export",
				"doc_search_query": "streaming csv export",
			},
		},
		"themes":                 []string{"performance"},
		"recommended_priorities": []string{"insight-001"},
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("valid response converts to domain model", func(t *testing.T) {
		svc, err := analysis.New(respondWith(validPayload()))
		gt.NoError(t, err).Required()

		result, err := svc.Analyze(ctx, "Speaker A: the export is slow")
		gt.NoError(t, err).Required()

		gt.Value(t, result.ProductContext).Equal("reporting tool")
		gt.Array(t, result.Insights).Length(1).Required()
		gt.Value(t, result.Insights[0].ID).Equal(types.InsightID("insight-001"))
		gt.Value(t, result.Insights[0].Category).Equal(types.CategoryPainPoint)
		gt.Value(t, result.Insights[0].Severity).Equal(types.SeverityHigh)
		gt.Array(t, result.Themes).Length(1)
	})

	t.Run("unknown category fails the whole response", func(t *testing.T) {
		payload := validPayload()
		payload["insights"].([]map[string]any)[0]["category"] = "complaint"

		svc, err := analysis.New(respondWith(payload))
		gt.NoError(t, err).Required()

		_, err = svc.Analyze(ctx, "Speaker A: hello")
		gt.Error(t, err)
	})

	t.Run("duplicate insight IDs fail the whole response", func(t *testing.T) {
		payload := validPayload()
		dup := validPayload()["insights"].([]map[string]any)[0]
		payload["insights"] = append(payload["insights"].([]map[string]any), dup)

		svc, err := analysis.New(respondWith(payload))
		gt.NoError(t, err).Required()

		_, err = svc.Analyze(ctx, "Speaker A: hello")
		gt.Error(t, err)
	})

	t.Run("non-JSON response is a hard error", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{Texts: []string{"sorry, I cannot help with that"}}, nil
					},
				}, nil
			},
		}
		svc, err := analysis.New(llm)
		gt.NoError(t, err).Required()

		_, err = svc.Analyze(ctx, "Speaker A: hello")
		gt.Error(t, err)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, errors.New("model overloaded")
					},
				}, nil
			},
		}
		svc, err := analysis.New(llm)
		gt.NoError(t, err).Required()

		_, err = svc.Analyze(ctx, "Speaker A: hello")
		gt.Error(t, err)
	})

	t.Run("empty transcript is rejected", func(t *testing.T) {
		svc, err := analysis.New(respondWith(validPayload()))
		gt.NoError(t, err).Required()

		_, err = svc.Analyze(ctx, "  ")
		gt.Error(t, err)
	})

	t.Run("zero insights is a valid result", func(t *testing.T) {
		payload := validPayload()
		payload["insights"] = []map[string]any{}

		svc, err := analysis.New(respondWith(payload))
		gt.NoError(t, err).Required()

		result, err := svc.Analyze(ctx, "Speaker A: everything works great")
		gt.NoError(t, err).Required()
		gt.Array(t, result.Insights).Length(0)
	})
}

func TestNew_RequiresLLMClient(t *testing.T) {
	_, err := analysis.New(nil)
	gt.Error(t, err)
}
