package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

func TestNewBatchResult(t *testing.T) {
	t.Run("counts derived from records", func(t *testing.T) {
		batch := model.NewBatchResult([]model.CreatedIssue{
			{InsightID: "i-1", Status: types.IssueStatusCreated, URL: "https://example.com/1"},
			{InsightID: "i-2", Status: types.IssueStatusFailed, Error: "tracker unavailable"},
			{InsightID: "i-3", Status: types.IssueStatusCreated, URL: "https://example.com/3"},
		})

		gt.Value(t, batch.Total).Equal(3)
		gt.Value(t, batch.Successful).Equal(2)
		gt.Value(t, batch.Failed).Equal(1)
		gt.Value(t, batch.Total).Equal(batch.Successful + batch.Failed)
		gt.Value(t, batch.ID.String()).NotEqual("")
	})

	t.Run("empty batch", func(t *testing.T) {
		batch := model.NewBatchResult(nil)

		gt.Value(t, batch.Total).Equal(0)
		gt.Value(t, batch.Successful).Equal(0)
		gt.Value(t, batch.Failed).Equal(0)
	})
}
