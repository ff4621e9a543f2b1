package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/utils/async"
)

//go:embed prompt/build_system.md
var buildSystemPrompt string

// buildStore holds in-flight and finished build jobs for the lifetime of
// the process. Jobs are keyed by their opaque build ID.
type buildStore struct {
	mu   sync.RWMutex
	jobs map[types.BuildID]*model.BuildJob
}

func newBuildStore() *buildStore {
	return &buildStore{
		jobs: make(map[types.BuildID]*model.BuildJob),
	}
}

func (s *buildStore) put(job *model.BuildJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID()] = job
}

func (s *buildStore) get(id types.BuildID) (*model.BuildJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// BuildRequest describes the issue a build job should plan for
type BuildRequest struct {
	IssueNumber  int
	IssueTitle   string
	IssueBody    string
	Instructions string
}

// StartBuild queues an asynchronous build job that drafts an implementation
// plan for a created issue. It returns immediately with the opaque build ID;
// progress is observed via GetBuild.
func (uc *UseCases) StartBuild(ctx context.Context, req *BuildRequest) (types.BuildID, error) {
	if uc.buildLLM == nil {
		return "", ErrNoBuildLLM
	}
	if strings.TrimSpace(req.IssueTitle) == "" {
		return "", goerr.New("issue title is required", goerr.V("issue_number", req.IssueNumber))
	}

	job := model.NewBuildJob(req.IssueNumber)
	job.AppendLog("system", fmt.Sprintf("build queued for issue #%d", req.IssueNumber))
	uc.builds.put(job)

	async.Dispatch(ctx, func(ctx context.Context) error {
		uc.runBuild(ctx, job, req)
		return nil
	})

	return job.ID(), nil
}

// GetBuild returns a consistent snapshot of the build job state, including
// its append-only log sequence.
func (uc *UseCases) GetBuild(id types.BuildID) (*model.BuildSnapshot, error) {
	job, ok := uc.builds.get(id)
	if !ok {
		return nil, goerr.Wrap(ErrBuildNotFound, "unknown build ID", goerr.V("build_id", id))
	}
	return job.Snapshot(), nil
}

// runBuild executes one build job to a terminal state
func (uc *UseCases) runBuild(ctx context.Context, job *model.BuildJob, req *BuildRequest) {
	job.SetStatus(types.BuildStatusRunning)
	job.AppendLog("system", "generating implementation plan")

	session, err := uc.buildLLM.NewSession(ctx,
		gollem.WithSessionSystemPrompt(buildSystemPrompt),
	)
	if err != nil {
		job.Fail(fmt.Sprintf("failed to create LLM session: %v", err))
		return
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(req)))
	if err != nil {
		job.Fail(fmt.Sprintf("plan generation failed: %v", err))
		return
	}

	plan := strings.TrimSpace(strings.Join(resp.Texts, "\n"))
	if plan == "" {
		job.Fail("plan generation returned no content")
		return
	}

	job.SetPlan(plan)
	job.AppendLog("system", "implementation plan ready")
	job.SetStatus(types.BuildStatusCompleted)
}

func buildUserPrompt(req *BuildRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Issue #%d: %s\n\n", req.IssueNumber, req.IssueTitle)
	if req.IssueBody != "" {
		sb.WriteString(req.IssueBody)
		sb.WriteString("\n\n")
	}
	if req.Instructions != "" {
		sb.WriteString("## Additional Instructions\n")
		sb.WriteString(req.Instructions)
		sb.WriteString("\n")
	}

	return sb.String()
}
