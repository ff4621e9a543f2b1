package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/usecase"
	"github.com/secmon-lab/hearsight/pkg/utils/errutil"
)

// startBuildHandler queues an asynchronous build job and returns its ID
func (s *Server) startBuildHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	buildID, err := s.uc.StartBuild(ctx, &usecase.BuildRequest{
		IssueNumber:  req.IssueNumber,
		IssueTitle:   req.IssueTitle,
		IssueBody:    req.IssueBody,
		Instructions: req.Instructions,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, usecase.ErrNoBuildLLM) {
			status = http.StatusServiceUnavailable
		}
		errutil.HandleHTTP(ctx, w, err, status)
		return
	}

	respondJSON(ctx, w, http.StatusAccepted, startBuildResponse{BuildID: buildID})
}

// getBuildHandler returns a snapshot of a build job, including its
// append-only log sequence
func (s *Server) getBuildHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buildID := types.BuildID(chi.URLParam(r, "buildID"))

	snapshot, err := s.uc.GetBuild(buildID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrBuildNotFound) {
			status = http.StatusNotFound
		}
		errutil.HandleHTTP(ctx, w, err, status)
		return
	}

	respondJSON(ctx, w, http.StatusOK, snapshot)
}
