package model

import (
	"sync"
	"time"

	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

// BuildLogRecord is one append-only log line of a build job
type BuildLogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
}

// BuildJob tracks one asynchronous build run keyed by an opaque build ID.
// Log records are append-only; Snapshot returns a consistent copy so the
// running goroutine and HTTP readers never share mutable state.
type BuildJob struct {
	mu sync.Mutex

	id          types.BuildID
	issueNumber int
	status      types.BuildStatus
	logs        []BuildLogRecord
	plan        string
	errMessage  string
	createdAt   time.Time
}

// NewBuildJob creates a queued build job for the given issue
func NewBuildJob(issueNumber int) *BuildJob {
	return &BuildJob{
		id:          types.NewBuildID(),
		issueNumber: issueNumber,
		status:      types.BuildStatusQueued,
		createdAt:   time.Now().UTC(),
	}
}

// ID returns the opaque build ID
func (j *BuildJob) ID() types.BuildID {
	return j.id
}

// AppendLog adds one log record
func (j *BuildJob) AppendLog(logType, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logs = append(j.logs, BuildLogRecord{
		Timestamp: time.Now().UTC(),
		Type:      logType,
		Message:   message,
	})
}

// SetStatus transitions the job status. Terminal states are sticky.
func (j *BuildJob) SetStatus(status types.BuildStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status.Terminal() {
		return
	}
	j.status = status
}

// SetPlan records the generated implementation plan
func (j *BuildJob) SetPlan(plan string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.plan = plan
}

// Fail transitions the job to failed with an error message
func (j *BuildJob) Fail(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status.Terminal() {
		return
	}
	j.status = types.BuildStatusFailed
	j.errMessage = message
}

// BuildSnapshot is an immutable view of a build job
type BuildSnapshot struct {
	BuildID     types.BuildID     `json:"build_id"`
	IssueNumber int               `json:"issue_number"`
	Status      types.BuildStatus `json:"status"`
	Logs        []BuildLogRecord  `json:"logs"`
	Plan        string            `json:"plan,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Snapshot returns a consistent copy of the job state
func (j *BuildJob) Snapshot() *BuildSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	logs := make([]BuildLogRecord, len(j.logs))
	copy(logs, j.logs)
	return &BuildSnapshot{
		BuildID:     j.id,
		IssueNumber: j.issueNumber,
		Status:      j.status,
		Logs:        logs,
		Plan:        j.plan,
		Error:       j.errMessage,
		CreatedAt:   j.createdAt,
	}
}
