package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/mmcdole/gofeed"
)

const adapterRSS = "rss"

// statusLabelRe matches the upstream's own authoritative current-state label
// inside a bold marker, e.g. "<strong>Resolved</strong> - all clear".
var statusLabelRe = regexp.MustCompile(`(?i)<(?:strong|b)>\s*(Resolved|Monitoring|Investigating|Identified|Completed|Scheduled|In progress)\s*</(?:strong|b)>`)

// RSSAdapter normalizes a generic status-page RSS/Atom feed. Incident
// severities come from the keyword classifier; the service rollup trusts the
// newest item's explicit status label over keyword heuristics.
type RSSAdapter struct {
	parser *gofeed.Parser
}

// NewRSSAdapter creates an RSS adapter using the given HTTP client.
func NewRSSAdapter(client *http.Client) *RSSAdapter {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "status-garden"
	return &RSSAdapter{parser: parser}
}

// Fetch fetches and normalizes the provider's feed. Any fetch or parse
// failure yields a fallback record.
func (a *RSSAdapter) Fetch(ctx context.Context, provider domain.StatusProvider) domain.ServiceStatus {
	start := time.Now()
	status, err := a.fetch(ctx, provider)
	recordFetch(provider.ID, adapterRSS, time.Since(start))
	if err != nil {
		slog.Warn("rss fetch failed", "provider", provider.ID, "url", provider.URL, "error", err)
		recordFetchFailure(provider.ID, adapterRSS)
		return fallbackStatus(provider, time.Now())
	}
	return status
}

func (a *RSSAdapter) fetch(ctx context.Context, provider domain.StatusProvider) (domain.ServiceStatus, error) {
	feed, err := a.parser.ParseURLWithContext(provider.URL, ctx)
	if err != nil {
		return domain.ServiceStatus{}, fmt.Errorf("parse feed: %w", err)
	}

	classifier := NewClassifier(provider.Keywords...)
	incidents := make([]domain.Incident, 0, len(feed.Items))
	for _, item := range feed.Items {
		incidents = append(incidents, a.buildIncident(item, classifier))
	}

	return domain.ServiceStatus{
		ProviderID:    provider.ID,
		ServiceName:   provider.Name,
		ServiceURL:    serviceURL(provider, feed.Link),
		LastUpdated:   feedUpdated(feed),
		Incidents:     incidents,
		CurrentStatus: deriveOverall(incidents),
	}, nil
}

func (a *RSSAdapter) buildIncident(item *gofeed.Item, classifier *Classifier) domain.Incident {
	description := item.Description
	if description == "" {
		description = item.Content
	}

	// The digest fallback must use the raw published date, not the
	// wall-clock substitute, to stay stable across polls.
	id := incidentID(item.GUID, item.Link, item.Title, item.Published)

	title := item.Title
	if title == "" {
		title = placeholderTitle
	}

	published := item.Published
	if published == "" {
		published = time.Now().UTC().Format(time.RFC3339)
	}

	return domain.Incident{
		ID:          id,
		Title:       title,
		Description: description,
		Link:        item.Link,
		PublishedAt: published,
		Severity:    classifier.Classify(item.Title + " " + description),
	}
}

// deriveOverall implements the two-tier rollup: the newest item's explicit
// bold status label wins, then a "resolved" title forces healthy, then the
// keyword-classified severity of that single item applies.
func deriveOverall(incidents []domain.Incident) domain.Severity {
	if len(incidents) == 0 {
		return domain.SeverityNone
	}

	latest := incidents[0]
	if match := statusLabelRe.FindStringSubmatch(latest.Description); match != nil {
		return severityFromLabel(match[1])
	}
	if strings.Contains(strings.ToLower(latest.Title), "resolved") {
		return domain.SeverityNone
	}

	return latest.Severity
}

func severityFromLabel(label string) domain.Severity {
	switch strings.ToLower(label) {
	case "resolved", "completed":
		return domain.SeverityNone
	case "monitoring", "investigating", "identified", "in progress":
		return domain.SeverityMinor
	case "scheduled":
		return domain.SeverityMaintenance
	}
	return domain.SeverityNone
}

func feedUpdated(feed *gofeed.Feed) string {
	if feed.Updated != "" {
		return feed.Updated
	}
	if feed.Published != "" {
		return feed.Published
	}
	return time.Now().UTC().Format(time.RFC3339)
}
