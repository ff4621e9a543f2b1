package notiontracker

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Service provides interface to Notion as a fallback issue tracker. Issues
// become pages in a Notion database with Category and Severity select
// properties mirroring the tracker labels.
type Service interface {
	// Name identifies this tracker in logs and error messages
	Name() string

	// CreateIssue creates one page for the draft and returns its URL.
	// Notion pages have no issue number; the returned number is always 0.
	CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error)
}
