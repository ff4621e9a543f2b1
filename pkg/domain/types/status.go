package types

// IssueStatus is the terminal state of one issue materialization attempt chain
type IssueStatus string

const (
	IssueStatusCreated IssueStatus = "created"
	IssueStatusFailed  IssueStatus = "failed"
)

// String returns the string representation of IssueStatus
func (s IssueStatus) String() string {
	return string(s)
}

// BuildStatus tracks the lifecycle of a background build job
type BuildStatus string

const (
	BuildStatusQueued    BuildStatus = "queued"
	BuildStatusRunning   BuildStatus = "running"
	BuildStatusCompleted BuildStatus = "completed"
	BuildStatusFailed    BuildStatus = "failed"
)

// Terminal returns true when the build will not change state anymore
func (s BuildStatus) Terminal() bool {
	return s == BuildStatusCompleted || s == BuildStatusFailed
}

// String returns the string representation of BuildStatus
func (s BuildStatus) String() string {
	return string(s)
}
