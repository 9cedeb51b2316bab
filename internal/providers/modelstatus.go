package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
)

const adapterModelStatus = "modelstatus"

type modelStatusResponse struct {
	State  string `json:"state"`
	Result struct {
		ProviderUsername      string  `json:"provider_username"`
		ProviderName          string  `json:"provider_name"`
		Status                string  `json:"status"`
		ErrorRate             float64 `json:"error_rate"`
		AverageGenerationTime float64 `json:"average_generation_time"`
		Timestamp             string  `json:"timestamp"`
	} `json:"result"`
}

type modelStatusIncidentsResponse struct {
	State  string `json:"state"`
	Result struct {
		Incidents []struct {
			IncidentID string `json:"incident_id"`
			Title      string `json:"title"`
			Status     string `json:"status"`
			Severity   string `json:"severity"`
			DetectedAt string `json:"detected_at"`
		} `json:"incidents"`
		Total int `json:"total"`
	} `json:"result"`
}

// ModelStatusAdapter normalizes a modelstatus-style JSON API: a current
// status endpoint plus a separate incidents listing. The status endpoint is
// the only rollup signal; the upstream already classifies, so there is no
// keyword guessing here.
type ModelStatusAdapter struct {
	client *http.Client
}

// NewModelStatusAdapter creates a modelstatus adapter using the given HTTP client.
func NewModelStatusAdapter(client *http.Client) *ModelStatusAdapter {
	return &ModelStatusAdapter{client: client}
}

// Fetch fetches and normalizes the provider's status. A status endpoint
// failure yields a fallback record; an incidents endpoint failure is soft
// and only degrades the incident list to empty.
func (a *ModelStatusAdapter) Fetch(ctx context.Context, provider domain.StatusProvider) domain.ServiceStatus {
	start := time.Now()
	status, err := a.fetch(ctx, provider)
	recordFetch(provider.ID, adapterModelStatus, time.Since(start))
	if err != nil {
		slog.Warn("modelstatus fetch failed", "provider", provider.ID, "url", provider.URL, "error", err)
		recordFetchFailure(provider.ID, adapterModelStatus)
		return fallbackStatus(provider, time.Now())
	}
	return status
}

func (a *ModelStatusAdapter) fetch(ctx context.Context, provider domain.StatusProvider) (domain.ServiceStatus, error) {
	base := strings.TrimRight(provider.URL, "/")

	var statusData modelStatusResponse
	statusURL := fmt.Sprintf("%s/api/provider/%s/status", base, url.PathEscape(provider.APIProviderID))
	if err := a.getJSON(ctx, statusURL, &statusData); err != nil {
		return domain.ServiceStatus{}, fmt.Errorf("fetch status: %w", err)
	}
	if statusData.Result.Status == "" {
		return domain.ServiceStatus{}, fmt.Errorf("malformed status payload: missing result.status")
	}

	incidents := a.fetchIncidents(ctx, provider, base)

	lastUpdated := statusData.Result.Timestamp
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}

	return domain.ServiceStatus{
		ProviderID:    provider.ID,
		ServiceName:   provider.Name,
		ServiceURL:    serviceURL(provider, fmt.Sprintf("%s/provider/%s", base, provider.APIProviderID)),
		LastUpdated:   lastUpdated,
		Incidents:     incidents,
		CurrentStatus: mapModelStatus(statusData.Result.Status),
	}, nil
}

// fetchIncidents fetches the secondary incidents signal. Failures here are
// soft: status and incidents are independent signals, so a broken incidents
// endpoint must not fail the whole service.
func (a *ModelStatusAdapter) fetchIncidents(ctx context.Context, provider domain.StatusProvider, base string) []domain.Incident {
	var data modelStatusIncidentsResponse
	incidentsURL := fmt.Sprintf("%s/api/incidents?provider=%s", base, url.QueryEscape(provider.APIProviderID))
	if err := a.getJSON(ctx, incidentsURL, &data); err != nil {
		slog.Warn("modelstatus incidents fetch failed, continuing without incidents",
			"provider", provider.ID, "error", err)
		return []domain.Incident{}
	}

	incidents := make([]domain.Incident, 0, len(data.Result.Incidents))
	for _, inc := range data.Result.Incidents {
		severity := domain.SeverityMinor
		if inc.Severity == "critical" {
			severity = domain.SeverityMajor
		}

		title := inc.Title
		if title == "" {
			title = placeholderTitle
		}

		link := provider.HomePageURL
		if link == "" {
			link = base
		}

		incidents = append(incidents, domain.Incident{
			ID:          incidentID(inc.IncidentID, "", inc.Title, inc.DetectedAt),
			Title:       title,
			Description: fmt.Sprintf("Status: %s, Severity: %s", inc.Status, inc.Severity),
			Link:        link,
			PublishedAt: inc.DetectedAt,
			Severity:    severity,
		})
	}
	return incidents
}

func (a *ModelStatusAdapter) getJSON(ctx context.Context, rawURL string, out any) error {
	return getJSON(ctx, a.client, rawURL, out)
}

func mapModelStatus(status string) domain.Severity {
	switch status {
	case "operational":
		return domain.SeverityNone
	case "degraded":
		return domain.SeverityMinor
	case "down":
		return domain.SeverityMajor
	case "insufficient_data":
		return domain.SeverityNone
	default:
		return domain.SeverityNone
	}
}
