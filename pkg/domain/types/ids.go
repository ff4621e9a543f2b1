package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// InsightID identifies an insight within a single analysis run. It is the
// join key linking an insight to its enrichment and to its created issue.
type InsightID string

// Validate checks if the InsightID is non-empty
func (i InsightID) Validate() error {
	if i == "" {
		return goerr.New("insight ID cannot be empty")
	}
	return nil
}

// String returns the string representation of InsightID
func (i InsightID) String() string {
	return string(i)
}

// BatchID is a UUID v7 identifier for one materialization batch
type BatchID string

// NewBatchID generates a new BatchID
func NewBatchID() BatchID {
	return BatchID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of BatchID
func (b BatchID) String() string {
	return string(b)
}

// BuildID is a UUID v7 identifier for a background build job
type BuildID string

// NewBuildID generates a new BuildID
func NewBuildID() BuildID {
	return BuildID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of BuildID
func (b BuildID) String() string {
	return string(b)
}
