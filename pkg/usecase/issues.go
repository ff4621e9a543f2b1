package usecase

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/interfaces"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
)

// attemptOutcome is the state of one bundle's creation attempt chain.
// Keeping the states explicit distinguishes "fallback failed too" from
// "no fallback configured" instead of conflating them in nested error
// handling.
type attemptOutcome int

const (
	outcomePrimaryCreated attemptOutcome = iota
	outcomeFallbackCreated
	outcomeNoFallback
	outcomeBothFailed
)

// CreateIssues materializes one tracked item per enriched insight,
// strictly sequentially to preserve issue ordering and avoid tracker rate
// limits. Per-item failures are absorbed into the item's record; the batch
// call itself never fails once a primary tracker is configured.
func (uc *UseCases) CreateIssues(ctx context.Context, items []model.EnrichedInsight) (*model.BatchResult, error) {
	if uc.primary == nil {
		return nil, ErrNoIssueTrackers
	}

	created := make([]model.CreatedIssue, 0, len(items))
	for _, item := range items {
		created = append(created, uc.createOne(ctx, item))
	}

	batch := model.NewBatchResult(created)

	logging.From(ctx).Info("issue batch materialized",
		"total", batch.Total,
		"successful", batch.Successful,
		"failed", batch.Failed,
	)

	return batch, nil
}

// createOne runs the per-bundle state machine:
// pending → primary created, or
// pending → primary failed → fallback created, or
// pending → primary failed → fallback failed (or unavailable) → failed.
// No retries beyond the single fallback hop.
func (uc *UseCases) createOne(ctx context.Context, item model.EnrichedInsight) model.CreatedIssue {
	logger := logging.From(ctx)
	draft := uc.renderDraft(item)

	record := model.CreatedIssue{
		InsightID: item.Insight.ID,
		Title:     draft.Title,
	}

	outcome, ref, lastErr := uc.attemptCreate(ctx, draft)
	switch outcome {
	case outcomePrimaryCreated, outcomeFallbackCreated:
		record.Status = types.IssueStatusCreated
		record.URL = ref.URL
		record.Number = ref.Number
		if outcome == outcomeFallbackCreated {
			logger.Info("issue created via fallback tracker",
				"insight_id", item.Insight.ID, "tracker", uc.fallback.Name())
		}
	case outcomeNoFallback, outcomeBothFailed:
		record.Status = types.IssueStatusFailed
		record.Error = lastErr.Error()
		logger.Warn("issue creation failed",
			"insight_id", item.Insight.ID,
			"fallback_available", outcome == outcomeBothFailed,
			"error", lastErr.Error(),
		)
	}

	return record
}

// attemptCreate tries the primary tracker, then the fallback tracker once
// if configured. It returns the terminal outcome, the successful reference
// if any, and the last error otherwise.
func (uc *UseCases) attemptCreate(ctx context.Context, draft *model.IssueDraft) (attemptOutcome, *model.IssueRef, error) {
	ref, err := uc.createWithTimeout(ctx, uc.primary, draft)
	if err == nil {
		return outcomePrimaryCreated, ref, nil
	}

	logging.From(ctx).Warn("primary tracker failed",
		"tracker", uc.primary.Name(), "error", err.Error())

	if uc.fallback == nil {
		return outcomeNoFallback, nil, err
	}

	ref, fallbackErr := uc.createWithTimeout(ctx, uc.fallback, draft)
	if fallbackErr == nil {
		return outcomeFallbackCreated, ref, nil
	}

	return outcomeBothFailed, nil, fallbackErr
}

func (uc *UseCases) createWithTimeout(ctx context.Context, tracker interfaces.IssueTracker, draft *model.IssueDraft) (*model.IssueRef, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()

	return tracker.CreateIssue(callCtx, draft)
}
