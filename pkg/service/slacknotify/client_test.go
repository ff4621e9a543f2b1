package slacknotify_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/service/slacknotify"
)

func TestNew_Validation(t *testing.T) {
	_, err := slacknotify.New("", "#product")
	gt.Error(t, err)

	_, err = slacknotify.New("xoxb-token", "")
	gt.Error(t, err)

	_, err = slacknotify.New("xoxb-token", "#product")
	gt.NoError(t, err)
}

func TestFormatBatchSummary(t *testing.T) {
	batch := model.NewBatchResult([]model.CreatedIssue{
		{
			InsightID: "i-1",
			Title:     "🔴 [Pain Point] Export is slow",
			URL:       "https://github.example.com/issues/1",
			Status:    types.IssueStatusCreated,
		},
		{
			InsightID: "i-2",
			Title:     "🟡 [Confusion] Settings are hidden",
			Status:    types.IssueStatusFailed,
			Error:     "label not found",
		},
	})

	text := slacknotify.FormatBatchSummary(batch)

	gt.Bool(t, strings.Contains(text, "1 issue(s) created, 1 failed")).True()
	gt.Bool(t, strings.Contains(text, "<https://github.example.com/issues/1|🔴 [Pain Point] Export is slow>")).True()
	gt.Bool(t, strings.Contains(text, "🟡 [Confusion] Settings are hidden — failed: label not found")).True()
}
