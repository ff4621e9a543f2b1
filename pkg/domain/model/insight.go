package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

// Insight is one categorized, evidence-backed observation extracted from a
// transcript. Insights are immutable once extracted; downstream stages pass
// them by value and never mutate shared state.
type Insight struct {
	ID              types.InsightID `json:"id"`
	Category        types.Category  `json:"category"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Severity        types.Severity  `json:"severity"`
	EvidenceQuote   string          `json:"evidence_quote"`
	Speaker         string          `json:"speaker"`
	SuggestedAction string          `json:"suggested_action"`
	DocSearchQuery  string          `json:"doc_search_query"`
}

// Validate checks required fields and the closed category/severity sets
func (i *Insight) Validate() error {
	if err := i.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid insight")
	}
	if err := i.Category.Validate(); err != nil {
		return goerr.Wrap(err, "invalid insight", goerr.V("id", i.ID))
	}
	if err := i.Severity.Validate(); err != nil {
		return goerr.Wrap(err, "invalid insight", goerr.V("id", i.ID))
	}
	if i.Title == "" {
		return goerr.New("insight title is required", goerr.V("id", i.ID))
	}
	return nil
}

// Analysis is the output of the extraction stage
type Analysis struct {
	ProductContext        string    `json:"product_context"`
	Insights              []Insight `json:"insights"`
	Themes                []string  `json:"themes"`
	RecommendedPriorities []string  `json:"recommended_priorities"`
}

// Validate checks each insight and the uniqueness of insight IDs within
// the batch. Downstream structures index by ID and must never silently
// drop or duplicate an insight.
func (a *Analysis) Validate() error {
	seen := make(map[types.InsightID]bool, len(a.Insights))
	for idx := range a.Insights {
		ins := &a.Insights[idx]
		if err := ins.Validate(); err != nil {
			return err
		}
		if seen[ins.ID] {
			return goerr.New("duplicate insight ID in batch", goerr.V("id", ins.ID))
		}
		seen[ins.ID] = true
	}
	return nil
}
