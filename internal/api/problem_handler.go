package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/practice-tracker/internal/api/shared"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/redact"
	"github.com/phrazzld/practice-tracker/internal/service"
	"github.com/phrazzld/practice-tracker/internal/service/review"
)

// ProblemHandler handles problem-related HTTP requests
type ProblemHandler struct {
	problemService service.ProblemService
	reviewService  review.Service
	logger         *slog.Logger
}

// NewProblemHandler creates a new ProblemHandler
func NewProblemHandler(
	problemService service.ProblemService,
	reviewService review.Service,
	logger *slog.Logger,
) *ProblemHandler {
	if logger == nil {
		panic("logger cannot be nil for ProblemHandler")
	}

	return &ProblemHandler{
		problemService: problemService,
		reviewService:  reviewService,
		logger:         logger.With(slog.String("component", "problem_handler")),
	}
}

// decodeProblemRequest parses and validates a ProblemRequest body. It writes
// the error response itself and reports whether the handler may continue.
func (h *ProblemHandler) decodeProblemRequest(w http.ResponseWriter, r *http.Request) (ProblemRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProblemRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return req, false
	}

	return req, true
}

// CreateProblem handles POST /problems requests
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeProblemRequest(w, r)
	if !ok {
		return
	}

	problem, err := h.problemService.CreateProblem(r.Context(), req.Details())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create problem")
		return
	}

	log.Debug("problem created", slog.Int64("problem_id", problem.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateProblemResponse{ID: problem.ID})
}

// ListProblems handles GET /problems requests, optionally filtered by
// the difficulty query parameter.
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")

	problems, err := h.problemService.ListProblems(r.Context(), difficulty)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list problems")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, problemsToResponse(problems))
}

// GetProblem handles GET /problems/{id} requests
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	problem, err := h.problemService.GetProblem(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get problem")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, problemToResponse(problem))
}

// EditProblem handles PUT /problems/{id} requests. The body replaces every
// descriptive field; review state is untouched.
func (h *ProblemHandler) EditProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeProblemRequest(w, r)
	if !ok {
		return
	}

	problem, err := h.problemService.EditProblem(r.Context(), id, req.Details())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to edit problem")
		return
	}

	log.Debug("problem edited", slog.Int64("problem_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, problemToResponse(problem))
}

// DeleteProblem handles DELETE /problems/{id} requests. Deleting a missing
// problem still answers 204.
func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.problemService.DeleteProblem(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete problem")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReviewProblem handles POST /problems/{id}/review requests
func (h *ProblemHandler) ReviewProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	problem, err := h.reviewService.MarkReviewed(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record review")
		return
	}

	log.Debug("problem reviewed",
		slog.Int64("problem_id", id),
		slog.Int("review_count", problem.ReviewCount),
		slog.String("next_review", problem.NextReview.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, problemToResponse(problem))
}

// ListDue handles GET /problems/due requests. The date query parameter
// defaults to today.
func (h *ProblemHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	date, ok, err := getQueryDate(r, "date")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !ok {
		date = h.problemService.Today()
	}

	problems, err := h.problemService.ListDue(r.Context(), date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list due problems")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueResponse{
		Date:     date.String(),
		Problems: problemsToResponse(problems),
	})
}
