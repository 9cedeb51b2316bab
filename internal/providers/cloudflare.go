package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const adapterCloudflare = "cloudflare"

var statusNameCaser = cases.Title(language.English)

type cloudflarePage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	UpdatedAt string `json:"updated_at"`
}

type cloudflareComponent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
}

type cloudflareIncident struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Impact          string `json:"impact"`
	Shortlink       string `json:"shortlink"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	IncidentUpdates []struct {
		Body string `json:"body"`
	} `json:"incident_updates"`
}

type cloudflareResponse struct {
	Page       cloudflarePage        `json:"page"`
	Components []cloudflareComponent `json:"components"`
	Incidents  []cloudflareIncident  `json:"incidents"`
}

// CloudflareAdapter normalizes a statuspage-style JSON API. With a
// configured component id the service status derives from that single
// component's state; otherwise the URL is treated as an unresolved-incidents
// listing and the rollup is the worst impact among open incidents.
type CloudflareAdapter struct {
	client *http.Client
}

// NewCloudflareAdapter creates a cloudflare adapter using the given HTTP client.
func NewCloudflareAdapter(client *http.Client) *CloudflareAdapter {
	return &CloudflareAdapter{client: client}
}

// Fetch fetches and normalizes the provider's status. Network or parse
// errors, and a missing configured component, yield a fallback record.
func (a *CloudflareAdapter) Fetch(ctx context.Context, provider domain.StatusProvider) domain.ServiceStatus {
	start := time.Now()
	status, err := a.fetch(ctx, provider)
	recordFetch(provider.ID, adapterCloudflare, time.Since(start))
	if err != nil {
		slog.Warn("cloudflare fetch failed", "provider", provider.ID, "url", provider.URL, "error", err)
		recordFetchFailure(provider.ID, adapterCloudflare)
		return fallbackStatus(provider, time.Now())
	}
	return status
}

func (a *CloudflareAdapter) fetch(ctx context.Context, provider domain.StatusProvider) (domain.ServiceStatus, error) {
	var data cloudflareResponse
	if err := getJSON(ctx, a.client, provider.URL, &data); err != nil {
		return domain.ServiceStatus{}, fmt.Errorf("fetch status page: %w", err)
	}
	if data.Page.ID == "" && data.Page.URL == "" {
		return domain.ServiceStatus{}, fmt.Errorf("malformed payload: missing page metadata")
	}

	if provider.ComponentID != "" {
		return a.fromComponent(provider, data)
	}
	return a.fromIncidents(provider, data), nil
}

// fromComponent derives status from the one configured component. Absence of
// that component is a hard failure.
func (a *CloudflareAdapter) fromComponent(provider domain.StatusProvider, data cloudflareResponse) (domain.ServiceStatus, error) {
	var component *cloudflareComponent
	for i := range data.Components {
		if data.Components[i].ID == provider.ComponentID {
			component = &data.Components[i]
			break
		}
	}
	if component == nil {
		return domain.ServiceStatus{}, fmt.Errorf("component %s not found", provider.ComponentID)
	}

	current := mapComponentStatus(component.Status)
	incidents := []domain.Incident{}

	// An active issue on the component is surfaced as a synthetic incident
	// so the dashboard has something to show.
	if current != domain.SeverityNone {
		description := component.Description
		if description == "" {
			description = "Current status: " + formatStatusName(component.Status)
		}
		incidents = append(incidents, domain.Incident{
			ID:          component.ID + "-" + component.UpdatedAt,
			Title:       formatStatusName(component.Status),
			Description: description,
			Link:        serviceURL(provider, data.Page.URL),
			PublishedAt: component.UpdatedAt,
			Severity:    current,
		})
	}

	lastUpdated := component.UpdatedAt
	if lastUpdated == "" {
		lastUpdated = data.Page.UpdatedAt
	}
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}

	return domain.ServiceStatus{
		ProviderID:    provider.ID,
		ServiceName:   provider.Name,
		ServiceURL:    serviceURL(provider, data.Page.URL),
		LastUpdated:   lastUpdated,
		Incidents:     incidents,
		CurrentStatus: current,
	}, nil
}

// fromIncidents derives status as the worst impact among unresolved
// incidents; an empty listing means a healthy service.
func (a *CloudflareAdapter) fromIncidents(provider domain.StatusProvider, data cloudflareResponse) domain.ServiceStatus {
	incidents := make([]domain.Incident, 0, len(data.Incidents))
	severities := make([]domain.Severity, 0, len(data.Incidents))
	for _, inc := range data.Incidents {
		severity := mapImpact(inc.Impact)
		severities = append(severities, severity)

		title := inc.Name
		if title == "" {
			title = placeholderTitle
		}

		description := ""
		if len(inc.IncidentUpdates) > 0 {
			description = inc.IncidentUpdates[0].Body
		}

		link := inc.Shortlink
		if link == "" {
			link = serviceURL(provider, data.Page.URL)
		}

		incidents = append(incidents, domain.Incident{
			ID:          incidentID(inc.ID, inc.Shortlink, inc.Name, inc.CreatedAt),
			Title:       title,
			Description: description,
			Link:        link,
			PublishedAt: inc.CreatedAt,
			Severity:    severity,
		})
	}

	lastUpdated := data.Page.UpdatedAt
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}

	return domain.ServiceStatus{
		ProviderID:    provider.ID,
		ServiceName:   provider.Name,
		ServiceURL:    serviceURL(provider, data.Page.URL),
		LastUpdated:   lastUpdated,
		Incidents:     incidents,
		CurrentStatus: domain.WorstOf(severities...),
	}
}

func mapComponentStatus(status string) domain.Severity {
	switch status {
	case "operational":
		return domain.SeverityNone
	case "degraded_performance":
		return domain.SeverityMinor
	case "partial_outage", "major_outage":
		return domain.SeverityMajor
	case "maintenance", "under_maintenance":
		return domain.SeverityMaintenance
	default:
		return domain.SeverityNone
	}
}

// mapImpact folds the upstream's critical impact into major: the severity
// scale has no fifth level.
func mapImpact(impact string) domain.Severity {
	switch impact {
	case "none":
		return domain.SeverityNone
	case "minor":
		return domain.SeverityMinor
	case "major", "critical":
		return domain.SeverityMajor
	case "maintenance":
		return domain.SeverityMaintenance
	default:
		return domain.SeverityNone
	}
}

// formatStatusName turns a vendor enum like "partial_outage" into a human
// label like "Partial Outage".
func formatStatusName(status string) string {
	return statusNameCaser.String(strings.ReplaceAll(status, "_", " "))
}
