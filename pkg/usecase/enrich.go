package usecase

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Enrich runs the (search → summarize) chain for each insight concurrently
// and returns exactly one EnrichedInsight per input, in input order.
//
// Enrichment is strictly best-effort: a failed search yields empty docs, a
// failed summarization yields an empty guide, and no branch failure ever
// affects another branch or the batch as a whole. The fan-out is capped and
// every external call carries its own timeout, so the worst-case batch
// latency is bounded by the slowest single branch.
func (uc *UseCases) Enrich(ctx context.Context, insights []model.Insight) []model.EnrichedInsight {
	results := make([]model.EnrichedInsight, len(insights))

	var eg errgroup.Group
	eg.SetLimit(uc.concurrency)

	for i, insight := range insights {
		eg.Go(func() error {
			results[i] = uc.enrichOne(ctx, insight)
			return nil
		})
	}

	// Branches never return errors; Wait only synchronizes completion
	_ = eg.Wait()

	return results
}

// enrichOne runs one two-step enrichment chain. Each value it writes is an
// owned copy; nothing here touches shared mutable state.
func (uc *UseCases) enrichOne(ctx context.Context, insight model.Insight) model.EnrichedInsight {
	result := model.EnrichedInsight{
		Insight: insight,
		Docs:    []model.DocResult{},
	}

	docs := uc.searchDocs(ctx, insight)
	if len(docs) == 0 {
		return result
	}
	result.Docs = docs

	result.ImplementationGuide = uc.summarizeDocs(ctx, insight, docs)

	return result
}

// searchDocs queries the document search provider. Any failure (timeout,
// non-2xx, malformed payload, missing provider) is treated as zero results.
func (uc *UseCases) searchDocs(ctx context.Context, insight model.Insight) []model.DocResult {
	if uc.searcher == nil {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()

	docs, err := uc.searcher.Search(callCtx, insight.DocSearchQuery, model.MaxDocsPerInsight)
	if err != nil {
		logging.From(ctx).Warn("doc search failed, continuing without docs",
			"insight_id", insight.ID,
			"query", insight.DocSearchQuery,
			"error", err.Error(),
		)
		return nil
	}

	if len(docs) > model.MaxDocsPerInsight {
		docs = docs[:model.MaxDocsPerInsight]
	}

	return docs
}

// summarizeDocs generates the implementation guide. Any failure yields an
// empty guide.
func (uc *UseCases) summarizeDocs(ctx context.Context, insight model.Insight, docs []model.DocResult) string {
	if uc.summarizer == nil {
		return ""
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()

	text, err := uc.summarizer.Summarize(callCtx, insight, docs)
	if err != nil {
		logging.From(ctx).Warn("guide summarization failed, continuing without guide",
			"insight_id", insight.ID,
			"error", err.Error(),
		)
		return ""
	}

	return text
}
