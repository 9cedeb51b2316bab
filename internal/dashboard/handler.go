// Package dashboard serves the aggregated status snapshot over a read-only
// JSON API.
package dashboard

import (
	"errors"
	"net/http"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/bissquit/status-garden/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// ErrProviderNotFound is returned when no provider matches the requested id.
var ErrProviderNotFound = errors.New("provider not found")

// SnapshotSource provides the latest aggregated snapshot.
// Implemented by aggregator.Poller.
type SnapshotSource interface {
	Snapshot() []domain.ServiceStatus
	Ready() bool
}

// Summary is the rollup view over all services: severity counts plus the
// worst severity across the board.
type Summary struct {
	Total       int             `json:"total"`
	Operational int             `json:"operational"`
	Minor       int             `json:"minor"`
	Major       int             `json:"major"`
	Maintenance int             `json:"maintenance"`
	Degraded    int             `json:"degraded"`
	Overall     domain.Severity `json:"overall"`
}

// Handler handles HTTP requests for the dashboard module.
type Handler struct {
	source SnapshotSource
}

// NewHandler creates a new dashboard handler.
func NewHandler(source SnapshotSource) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes registers all dashboard routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/status", func(r chi.Router) {
		r.Get("/", h.ListStatuses)
		r.Get("/{providerID}", h.GetStatus)
	})
	r.Get("/summary", h.GetSummary)
}

// ListStatuses returns the full list of normalized service statuses,
// active-incidents-first.
func (h *Handler) ListStatuses(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.source.Snapshot()
	if snapshot == nil {
		snapshot = []domain.ServiceStatus{}
	}
	httputil.Success(w, http.StatusOK, snapshot)
}

// GetStatus returns the status of a single provider by its configured id.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")

	for _, st := range h.source.Snapshot() {
		if st.ProviderID == providerID {
			httputil.Success(w, http.StatusOK, st)
			return
		}
	}

	httputil.HandleError(r.Context(), w, ErrProviderNotFound, []httputil.ErrorMapping{
		{Error: ErrProviderNotFound, Status: http.StatusNotFound},
	})
}

// GetSummary returns severity counts and the overall worst severity.
func (h *Handler) GetSummary(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.source.Snapshot()

	summary := Summary{Total: len(snapshot), Overall: domain.SeverityNone}
	for _, st := range snapshot {
		switch st.CurrentStatus {
		case domain.SeverityMinor:
			summary.Minor++
		case domain.SeverityMajor:
			summary.Major++
		case domain.SeverityMaintenance:
			summary.Maintenance++
		default:
			summary.Operational++
		}
		if st.Degraded {
			summary.Degraded++
		}
		summary.Overall = domain.WorstOf(summary.Overall, st.CurrentStatus)
	}

	httputil.Success(w, http.StatusOK, summary)
}
