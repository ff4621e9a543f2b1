package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/service/transcript"
	"github.com/secmon-lab/hearsight/pkg/usecase"
	"github.com/secmon-lab/hearsight/pkg/utils/errutil"
	"github.com/secmon-lab/hearsight/pkg/utils/safe"
)

// statusForError maps use case errors to HTTP status codes: input
// validation → 400, everything else → 500. Enrichment and materialization
// never surface errors here; their per-item statuses are embedded in a
// normal 200 response.
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyTranscript),
		errors.Is(err, usecase.ErrEmptyAudio):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// transcribeAudioHandler accepts a multipart audio upload.
// Max 25 MB. Formats: mp3, mp4, m4a, wav, webm.
func (s *Server) transcribeAudioHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, transcript.MaxAudioBytes)
	if err := r.ParseMultipartForm(transcript.MaxAudioBytes); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "audio upload exceeds size limit or is malformed"), http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "file field is required"), http.StatusBadRequest)
		return
	}
	defer safe.Close(ctx, file)

	result, err := s.uc.TranscribeAudio(ctx, header.Filename, file)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusForError(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, result)
}

// transcribeTextHandler accepts pasted transcript text as a fallback when
// audio is unavailable
func (s *Server) transcribeTextHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req transcribeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.TranscribeText(ctx, req.TranscriptText)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusForError(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, result)
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.Analyze(ctx, req.Transcript)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusForError(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, result)
}

// enrichHandler runs the best-effort enrichment fan-out. It always returns
// 200 with one enriched insight per input.
func (s *Server) enrichHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	enriched := s.uc.Enrich(ctx, req.Insights)

	respondJSON(ctx, w, http.StatusOK, enrichResponse{EnrichedInsights: enriched})
}

// createIssuesHandler materializes issues sequentially. Per-item failures
// are embedded in the response records; the call itself returns 200.
func (s *Server) createIssuesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createIssuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	batch, err := s.uc.CreateIssues(ctx, req.Issues)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusForError(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, batch)
}

// pipelineHandler runs the composed analyze → enrich → create-issues call
func (s *Server) pipelineHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.RunPipeline(ctx, req.Transcript)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusForError(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, result)
}
