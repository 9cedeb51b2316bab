package providers

import (
	"testing"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestServiceURL_FallbackOrder(t *testing.T) {
	provider := domain.StatusProvider{URL: "https://status.example.com/history.rss"}

	withHome := provider
	withHome.HomePageURL = "https://example.com/status"
	assert.Equal(t, "https://example.com/status", serviceURL(withHome, "https://upstream.example.com"))

	assert.Equal(t, "https://upstream.example.com", serviceURL(provider, "https://upstream.example.com"))
	assert.Equal(t, "https://status.example.com", serviceURL(provider, ""))
}

func TestIncidentID_PreferenceOrder(t *testing.T) {
	assert.Equal(t, "guid-1", incidentID("guid-1", "https://x/1", "t", "p"))
	assert.Equal(t, "https://x/1", incidentID("", "https://x/1", "t", "p"))

	digest := incidentID("", "", "title", "Mon, 02 Jan 2023 12:00:00 GMT")
	assert.Len(t, digest, 16)
	assert.Equal(t, digest, incidentID("", "", "title", "Mon, 02 Jan 2023 12:00:00 GMT"))
	assert.NotEqual(t, digest, incidentID("", "", "other title", "Mon, 02 Jan 2023 12:00:00 GMT"))
}

func TestFallbackStatus_AllFieldsPopulated(t *testing.T) {
	provider := domain.StatusProvider{
		ID:   "example",
		Name: "Example",
		URL:  "https://status.example.com/history.rss",
	}

	status := fallbackStatus(provider, time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "example", status.ProviderID)
	assert.Equal(t, "Example", status.ServiceName)
	assert.Equal(t, "https://status.example.com", status.ServiceURL)
	assert.Equal(t, "2023-01-02T12:00:00Z", status.LastUpdated)
	assert.NotNil(t, status.Incidents)
	assert.Empty(t, status.Incidents)
	assert.Equal(t, domain.SeverityMajor, status.CurrentStatus)
	assert.True(t, status.Degraded)
}
