package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
)

// PipelineResult bundles the output of the composed pipeline call
type PipelineResult struct {
	Analysis *model.Analysis         `json:"analysis"`
	Enriched []model.EnrichedInsight `json:"enriched_insights"`
	Batch    *model.BatchResult      `json:"created_issues"`
}

// RunPipeline composes analysis → enrichment → materialization in one
// call. A hard failure in extraction aborts the whole call before any
// issue exists; enrichment and materialization degrade per their contracts
// instead of aborting. Zero extracted insights flow through as empty lists.
func (uc *UseCases) RunPipeline(ctx context.Context, transcript string) (*PipelineResult, error) {
	analysis, err := uc.Analyze(ctx, transcript)
	if err != nil {
		return nil, goerr.Wrap(err, "pipeline aborted in extraction stage")
	}

	enriched := uc.Enrich(ctx, analysis.Insights)

	batch, err := uc.CreateIssues(ctx, enriched)
	if err != nil {
		return nil, goerr.Wrap(err, "pipeline aborted in materialization stage")
	}

	uc.notifyBatch(ctx, batch)

	return &PipelineResult{
		Analysis: analysis,
		Enriched: enriched,
		Batch:    batch,
	}, nil
}

// notifyBatch posts the batch summary if a notifier is configured.
// Notification is best-effort and never affects the pipeline result.
func (uc *UseCases) notifyBatch(ctx context.Context, batch *model.BatchResult) {
	if uc.notifier == nil {
		return
	}

	if err := uc.notifier.NotifyBatch(ctx, batch); err != nil {
		logging.From(ctx).Warn("batch notification failed", "error", err.Error())
	}
}
