package github

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Service provides interface to GitHub for issue creation
type Service interface {
	// Name identifies this tracker in logs and error messages
	Name() string

	// CreateIssue creates one issue with the draft's title, body and labels.
	// All labels must already exist in the repository; a missing label is
	// a creation failure like any other.
	CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error)
}
