// Package providers contains the adapters that normalize vendor-specific
// status feeds and APIs into the shared domain model. Every adapter converts
// its own failures into a fallback record at its boundary, so a broken
// upstream never propagates an error to the caller.
package providers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
)

// Fetcher fetches and normalizes the status of a single provider.
type Fetcher interface {
	Fetch(ctx context.Context, provider domain.StatusProvider) domain.ServiceStatus
}

// placeholderTitle substitutes for incidents the upstream reports without one.
const placeholderTitle = "Unknown incident"

// NewHTTPClient returns the HTTP client shared by all adapters.
// There is deliberately no retry or caching layer here.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// fallbackStatus builds the safe placeholder returned when an adapter cannot
// reach or parse its upstream. An unreachable status page is itself treated
// as a major-severity signal.
func fallbackStatus(p domain.StatusProvider, now time.Time) domain.ServiceStatus {
	return domain.ServiceStatus{
		ProviderID:    p.ID,
		ServiceName:   p.Name,
		ServiceURL:    serviceURL(p, ""),
		LastUpdated:   now.UTC().Format(time.RFC3339),
		Incidents:     []domain.Incident{},
		CurrentStatus: domain.SeverityMajor,
		Degraded:      true,
	}
}

// serviceURL resolves the canonical status page link: configured homepage,
// then the upstream-reported page URL, then the origin of the configured URL.
func serviceURL(p domain.StatusProvider, upstreamURL string) string {
	if p.HomePageURL != "" {
		return p.HomePageURL
	}
	if upstreamURL != "" {
		return upstreamURL
	}
	if u, err := url.Parse(p.URL); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Scheme + "://" + u.Host
	}
	return p.URL
}

// incidentID picks a stable identifier for an incident: the upstream id,
// then the link, then a deterministic digest of the incident's content.
// Repeated polls of the same unresolved incident must produce the same id.
func incidentID(upstreamID, link, title, published string) string {
	if upstreamID != "" {
		return upstreamID
	}
	if link != "" {
		return link
	}
	sum := sha256.Sum256([]byte(title + "|" + published + "|" + link))
	return hex.EncodeToString(sum[:8])
}

// getJSON performs a GET and decodes a JSON body. Non-2xx responses are
// errors; response shape checks are the caller's responsibility.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
