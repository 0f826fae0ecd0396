package api

import (
	"context"
	"net/http"

	"github.com/ignite/feedback-pipeline/internal/feedback"
	"github.com/ignite/feedback-pipeline/internal/pkg/httputil"
	"github.com/ignite/feedback-pipeline/internal/pkg/logger"
)

// FeedbackStore is the slice of the store the API needs: intake writes,
// the dashboard reads. The change listener is never reachable from here.
type FeedbackStore interface {
	Put(ctx context.Context, rec feedback.Record) error
	ListAll(ctx context.Context) ([]feedback.NormalizedRecord, error)
}

// Handlers holds the HTTP handlers and their dependencies
type Handlers struct {
	store FeedbackStore
}

// NewHandlers creates API handlers around a feedback store
func NewHandlers(store FeedbackStore) *Handlers {
	return &Handlers{store: store}
}

// SubmitRequest is the intake payload. The text may arrive under either
// legacy key: the frontend form sends "comment", older test tooling sends
// "feedbackText".
type SubmitRequest struct {
	CustomerID   string `json:"customer_id"`
	Comment      string `json:"comment"`
	FeedbackText string `json:"feedbackText"`
}

// Text resolves the submitted text across the legacy keys.
func (r SubmitRequest) Text() string {
	if r.Comment != "" {
		return r.Comment
	}
	return r.FeedbackText
}

// SubmitResponse returns the assigned composite key to the caller.
type SubmitResponse struct {
	Message    string `json:"message"`
	FeedbackID string `json:"feedback_id"`
	Date       string `json:"date"`
}

// submit is the intake core shared by the HTTP and Lambda surfaces.
func submit(ctx context.Context, store FeedbackStore, req SubmitRequest) (SubmitResponse, error) {
	rec := feedback.NewRecord(req.CustomerID, req.Text())
	if err := store.Put(ctx, rec); err != nil {
		return SubmitResponse{}, err
	}

	logger.Info("feedback submitted",
		"feedback_id", rec.FeedbackID,
		"customer_id", rec.CustomerID)

	return SubmitResponse{
		Message:    "Feedback submitted",
		FeedbackID: rec.FeedbackID,
		Date:       rec.Date,
	}, nil
}

// listAll is the query core shared by the HTTP and Lambda surfaces.
// The dashboard always gets an array, never null.
func listAll(ctx context.Context, store FeedbackStore) ([]feedback.NormalizedRecord, error) {
	records, err := store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []feedback.NormalizedRecord{}
	}
	return records, nil
}

// SubmitFeedback accepts a feedback submission and stores it PENDING.
func (h *Handlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	resp, err := submit(r.Context(), h.store, req)
	if err != nil {
		httputil.InternalError(w, err, "Failed to submit feedback")
		return
	}

	httputil.OK(w, resp)
}

// ListFeedback returns every stored record in the normalized dashboard shape.
func (h *Handlers) ListFeedback(w http.ResponseWriter, r *http.Request) {
	records, err := listAll(r.Context(), h.store)
	if err != nil {
		httputil.InternalError(w, err, "Failed to list feedback")
		return
	}

	httputil.OK(w, records)
}

// HealthCheck reports service liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{
		"status":  "ok",
		"service": "feedback-pipeline",
	})
}
