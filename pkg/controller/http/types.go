package http

import (
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

// Request/response bodies for the JSON API. Stage outputs are the domain
// entities themselves; these types only add the request envelopes.

type transcribeTextRequest struct {
	TranscriptText string `json:"transcript_text"`
}

type analyzeRequest struct {
	Transcript string `json:"transcript"`
}

type enrichRequest struct {
	Insights []model.Insight `json:"insights"`
}

type enrichResponse struct {
	EnrichedInsights []model.EnrichedInsight `json:"enriched_insights"`
}

type createIssuesRequest struct {
	Issues []model.EnrichedInsight `json:"issues"`
}

type startBuildRequest struct {
	IssueNumber  int    `json:"issue_number"`
	IssueTitle   string `json:"issue_title"`
	IssueBody    string `json:"issue_body"`
	Instructions string `json:"instructions"`
}

type startBuildResponse struct {
	BuildID types.BuildID `json:"build_id"`
}
