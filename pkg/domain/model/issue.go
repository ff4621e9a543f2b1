package model

import (
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

// IssueDraft is a rendered issue ready for submission to a tracker
type IssueDraft struct {
	Title  string
	Body   string
	Labels []string
}

// IssueRef holds the external identifiers of a created issue
type IssueRef struct {
	URL    string
	Number int
}

// CreatedIssue is the per-item materialization record. Exactly one is
// produced per input insight, in input order.
type CreatedIssue struct {
	InsightID types.InsightID   `json:"insight_id"`
	Title     string            `json:"title"`
	URL       string            `json:"url"`
	Number    int               `json:"number"`
	Status    types.IssueStatus `json:"status"`
	Error     string            `json:"error,omitempty"`
}

// BatchResult aggregates materialization records of one batch. The counts
// always satisfy Successful+Failed == Total == len(Created).
type BatchResult struct {
	ID         types.BatchID  `json:"batch_id"`
	Created    []CreatedIssue `json:"created"`
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
}

// NewBatchResult derives the aggregate counts from the per-item records
func NewBatchResult(created []CreatedIssue) *BatchResult {
	result := &BatchResult{
		ID:      types.NewBatchID(),
		Created: created,
		Total:   len(created),
	}
	for _, c := range created {
		if c.Status == types.IssueStatusCreated {
			result.Successful++
		} else {
			result.Failed++
		}
	}
	return result
}
