// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codelens/snippet-review/internal/core"
)

// ReviewHandler serves the review submission and listing endpoints.
type ReviewHandler struct {
	svc    core.ReviewService
	logger *slog.Logger
}

// NewReviewHandler creates a handler backed by the given review service.
func NewReviewHandler(svc core.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, logger: logger}
}

type submitRequest struct {
	Code     string `json:"code"`
	Filename string `json:"filename"`
	Language string `json:"language"`
}

type submitResponse struct {
	ID         string `json:"id"`
	ReviewText string `json:"reviewText"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Health reports service liveness. It succeeds regardless of store or model
// availability.
func (h *ReviewHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Submit accepts a snippet, has it reviewed, and returns the stored review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := h.svc.SubmitReview(r.Context(), core.SubmitRequest{
		Code:     req.Code,
		Filename: req.Filename,
		Language: req.Language,
	})
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, submitResponse{ID: result.ID, ReviewText: result.ReviewText})
}

// writeSubmitError maps the service error taxonomy to HTTP responses.
// Upstream and persistence failures keep the same generic 500 body but are
// logged with their own causes.
func (h *ReviewHandler) writeSubmitError(w http.ResponseWriter, err error) {
	var upstream *core.UpstreamError
	var persistence *core.PersistenceError

	switch {
	case errors.Is(err, core.ErrCodeRequired):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: core.ErrCodeRequired.Error()})
	case errors.As(err, &upstream):
		h.logger.Error("model provider failed", "error", upstream.Err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "server error", Details: upstream.Err.Error()})
	case errors.As(err, &persistence):
		h.logger.Error("review store failed", "error", persistence.Err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "server error", Details: persistence.Err.Error()})
	default:
		h.logger.Error("review submission failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "server error", Details: err.Error()})
	}
}

// List returns the most recent stored reviews, newest first.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListRecentReviews(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "server error", Details: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
