package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
)

// Analyze extracts structured insights from transcript text. An unreachable
// provider or a malformed provider response is a hard failure; no partial
// insight list is fabricated.
func (uc *UseCases) Analyze(ctx context.Context, transcript string) (*model.Analysis, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	if uc.analyzer == nil {
		return nil, ErrNoAnalyzer
	}

	analysis, err := uc.analyzer.Analyze(ctx, transcript)
	if err != nil {
		return nil, goerr.Wrap(err, "insight extraction failed")
	}

	logging.From(ctx).Info("transcript analyzed",
		"insights", len(analysis.Insights),
		"themes", len(analysis.Themes),
	)

	return analysis, nil
}
