package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveJSON(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func cloudflareProvider(url, componentID string) domain.StatusProvider {
	return domain.StatusProvider{
		ID:          "cf",
		Name:        "Cloudflare",
		URL:         url,
		Type:        domain.ProviderTypeCloudflareAPI,
		ComponentID: componentID,
	}
}

func TestCloudflareAdapter_WorstOfIncidents(t *testing.T) {
	srv := serveJSON(t, `{
		"page": {"id": "pg1", "name": "Cloudflare", "url": "https://www.cloudflarestatus.com", "updated_at": "2023-01-02T12:00:00Z"},
		"incidents": [
			{"id": "inc-1", "name": "DNS degradation", "status": "investigating", "impact": "minor",
			 "shortlink": "https://stspg.io/a", "created_at": "2023-01-02T10:00:00Z", "updated_at": "2023-01-02T11:00:00Z",
			 "incident_updates": [{"body": "We are investigating."}]},
			{"id": "inc-2", "name": "API outage", "status": "identified", "impact": "major",
			 "shortlink": "https://stspg.io/b", "created_at": "2023-01-02T11:30:00Z", "updated_at": "2023-01-02T11:45:00Z",
			 "incident_updates": []}
		]
	}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, ""))

	assert.Equal(t, domain.SeverityMajor, status.CurrentStatus)
	assert.Equal(t, "https://www.cloudflarestatus.com", status.ServiceURL)
	assert.Equal(t, "2023-01-02T12:00:00Z", status.LastUpdated)

	require.Len(t, status.Incidents, 2)
	assert.Equal(t, "inc-1", status.Incidents[0].ID)
	assert.Equal(t, domain.SeverityMinor, status.Incidents[0].Severity)
	assert.Equal(t, "We are investigating.", status.Incidents[0].Description)
	assert.Equal(t, "https://stspg.io/a", status.Incidents[0].Link)
	assert.Equal(t, domain.SeverityMajor, status.Incidents[1].Severity)
}

func TestCloudflareAdapter_NoOpenIncidents(t *testing.T) {
	srv := serveJSON(t, `{
		"page": {"id": "pg1", "name": "Cloudflare", "url": "https://www.cloudflarestatus.com", "updated_at": "2023-01-02T12:00:00Z"},
		"incidents": []
	}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, ""))

	assert.Equal(t, domain.SeverityNone, status.CurrentStatus)
	assert.Empty(t, status.Incidents)
	assert.False(t, status.Degraded)
}

func TestCloudflareAdapter_ComponentVariant(t *testing.T) {
	srv := serveJSON(t, `{
		"page": {"id": "pg1", "name": "Example", "url": "https://status.example.com", "updated_at": "2023-01-02T12:00:00Z"},
		"components": [
			{"id": "comp-1", "name": "API", "status": "operational", "description": "", "updated_at": "2023-01-02T09:00:00Z"},
			{"id": "comp-2", "name": "Dashboard", "status": "partial_outage", "description": "Dashboard is flaky", "updated_at": "2023-01-02T11:00:00Z"}
		]
	}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, "comp-2"))

	assert.Equal(t, domain.SeverityMajor, status.CurrentStatus)
	assert.Equal(t, "2023-01-02T11:00:00Z", status.LastUpdated)

	// An active component issue surfaces as one synthetic incident.
	require.Len(t, status.Incidents, 1)
	assert.Equal(t, "Partial Outage", status.Incidents[0].Title)
	assert.Equal(t, "Dashboard is flaky", status.Incidents[0].Description)
	assert.Equal(t, "comp-2-2023-01-02T11:00:00Z", status.Incidents[0].ID)
}

func TestCloudflareAdapter_OperationalComponentHasNoIncidents(t *testing.T) {
	srv := serveJSON(t, `{
		"page": {"id": "pg1", "name": "Example", "url": "https://status.example.com", "updated_at": "2023-01-02T12:00:00Z"},
		"components": [
			{"id": "comp-1", "name": "API", "status": "operational", "description": "", "updated_at": "2023-01-02T09:00:00Z"}
		]
	}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, "comp-1"))

	assert.Equal(t, domain.SeverityNone, status.CurrentStatus)
	assert.Empty(t, status.Incidents)
}

func TestCloudflareAdapter_MissingComponentIsHardFailure(t *testing.T) {
	srv := serveJSON(t, `{
		"page": {"id": "pg1", "name": "Example", "url": "https://status.example.com", "updated_at": "2023-01-02T12:00:00Z"},
		"components": []
	}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, "comp-missing"))

	assert.True(t, status.Degraded)
	assert.Equal(t, domain.SeverityMajor, status.CurrentStatus)
	assert.Empty(t, status.Incidents)
	assert.NotEmpty(t, status.ServiceURL)
}

func TestCloudflareAdapter_MalformedPayload(t *testing.T) {
	srv := serveJSON(t, `{"unexpected": true}`)

	adapter := NewCloudflareAdapter(srv.Client())
	status := adapter.Fetch(context.Background(), cloudflareProvider(srv.URL, ""))

	assert.True(t, status.Degraded)
	assert.Equal(t, domain.SeverityMajor, status.CurrentStatus)
}

func TestMapImpact(t *testing.T) {
	tests := []struct {
		impact string
		want   domain.Severity
	}{
		{impact: "none", want: domain.SeverityNone},
		{impact: "minor", want: domain.SeverityMinor},
		{impact: "major", want: domain.SeverityMajor},
		{impact: "critical", want: domain.SeverityMajor},
		{impact: "maintenance", want: domain.SeverityMaintenance},
		{impact: "unknown", want: domain.SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.impact, func(t *testing.T) {
			assert.Equal(t, tt.want, mapImpact(tt.impact))
		})
	}
}

func TestMapComponentStatus(t *testing.T) {
	tests := []struct {
		status string
		want   domain.Severity
	}{
		{status: "operational", want: domain.SeverityNone},
		{status: "degraded_performance", want: domain.SeverityMinor},
		{status: "partial_outage", want: domain.SeverityMajor},
		{status: "major_outage", want: domain.SeverityMajor},
		{status: "under_maintenance", want: domain.SeverityMaintenance},
		{status: "unknown", want: domain.SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, mapComponentStatus(tt.status))
		})
	}
}

func TestFormatStatusName(t *testing.T) {
	assert.Equal(t, "Partial Outage", formatStatusName("partial_outage"))
	assert.Equal(t, "Operational", formatStatusName("operational"))
}
