package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Category classifies an insight extracted from an interview transcript
type Category string

const (
	CategoryPainPoint        Category = "pain_point"
	CategoryFeatureRequest   Category = "feature_request"
	CategoryWorkflowIssue    Category = "workflow_issue"
	CategoryPositiveFeedback Category = "positive_feedback"
	CategoryConfusion        Category = "confusion"
)

// Categories returns all valid categories
func Categories() []Category {
	return []Category{
		CategoryPainPoint,
		CategoryFeatureRequest,
		CategoryWorkflowIssue,
		CategoryPositiveFeedback,
		CategoryConfusion,
	}
}

// Validate checks if the Category is one of the closed set
func (c Category) Validate() error {
	switch c {
	case CategoryPainPoint, CategoryFeatureRequest, CategoryWorkflowIssue,
		CategoryPositiveFeedback, CategoryConfusion:
		return nil
	}
	return goerr.New("invalid category", goerr.V("category", c))
}

// Label returns the human-readable display label, e.g. "Pain Point"
func (c Category) Label() string {
	parts := strings.Split(string(c), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}
