package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/usecase"
)

// waitForTerminal polls the build until it reaches a terminal state
func waitForTerminal(t *testing.T, uc *usecase.UseCases, id types.BuildID) types.BuildStatus {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := uc.GetBuild(id)
		gt.NoError(t, err).Required()
		if snap.Status.Terminal() {
			return snap.Status
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("build did not reach a terminal state")
	return ""
}

func TestStartBuild_CompletesWithPlan(t *testing.T) {
	ctx := context.Background()

	llm := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{"1. Stream the export\n2. Add tests"}}, nil
				},
			}, nil
		},
	}

	uc := usecase.New(usecase.WithBuildLLM(llm))

	id, err := uc.StartBuild(ctx, &usecase.BuildRequest{
		IssueNumber: 42,
		IssueTitle:  "Export is slow",
		IssueBody:   "streaming would fix it",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, id.String()).NotEqual("")

	status := waitForTerminal(t, uc, id)
	gt.Value(t, status).Equal(types.BuildStatusCompleted)

	snap, err := uc.GetBuild(id)
	gt.NoError(t, err).Required()
	gt.Value(t, snap.IssueNumber).Equal(42)
	gt.Value(t, snap.Plan).Equal("1. Stream the export\n2. Add tests")
	gt.Bool(t, len(snap.Logs) >= 2).True()
}

func TestStartBuild_LLMFailure(t *testing.T) {
	ctx := context.Background()

	llm := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return nil, errors.New("model overloaded")
				},
			}, nil
		},
	}

	uc := usecase.New(usecase.WithBuildLLM(llm))

	id, err := uc.StartBuild(ctx, &usecase.BuildRequest{IssueNumber: 7, IssueTitle: "Fix it"})
	gt.NoError(t, err).Required()

	status := waitForTerminal(t, uc, id)
	gt.Value(t, status).Equal(types.BuildStatusFailed)

	snap, err := uc.GetBuild(id)
	gt.NoError(t, err).Required()
	gt.Value(t, snap.Error).NotEqual("")
	gt.Value(t, snap.Plan).Equal("")
}

func TestStartBuild_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("no build LLM configured", func(t *testing.T) {
		uc := usecase.New()
		_, err := uc.StartBuild(ctx, &usecase.BuildRequest{IssueNumber: 1, IssueTitle: "x"})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrNoBuildLLM)).True()
	})

	t.Run("empty issue title", func(t *testing.T) {
		uc := usecase.New(usecase.WithBuildLLM(&mockLLMClient{}))
		_, err := uc.StartBuild(ctx, &usecase.BuildRequest{IssueNumber: 1, IssueTitle: "  "})
		gt.Error(t, err)
	})
}

func TestGetBuild_UnknownID(t *testing.T) {
	uc := usecase.New()

	_, err := uc.GetBuild(types.BuildID("no-such-build"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrBuildNotFound)).True()
}
