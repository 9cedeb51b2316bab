package domain

// Incident is one reported event (outage, degradation, maintenance window)
// sourced from an upstream feed or API.
type Incident struct {
	// ID is stable across repeated fetches of the same underlying incident.
	// Adapters fall back to the link, then to a deterministic digest of the
	// incident's content when the upstream provides no identifier.
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	PublishedAt string   `json:"published_at"`
	Severity    Severity `json:"severity,omitempty"`
}

// ServiceStatus is one row in the dashboard: a service's normalized state
// plus its recent incidents, newest first in upstream order.
type ServiceStatus struct {
	ProviderID    string     `json:"provider_id"`
	ServiceName   string     `json:"service_name"`
	ServiceURL    string     `json:"service_url"`
	LastUpdated   string     `json:"last_updated"`
	Incidents     []Incident `json:"incidents"`
	CurrentStatus Severity   `json:"current_status"`
	// Degraded marks a fallback record produced when the upstream could not
	// be reached or parsed.
	Degraded bool `json:"degraded,omitempty"`
}

// HasActiveIncident reports whether the service currently shows anything
// other than a healthy state.
func (s *ServiceStatus) HasActiveIncident() bool {
	return s.CurrentStatus != SeverityNone
}
