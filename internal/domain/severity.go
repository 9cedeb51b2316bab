// Package domain defines the shared data model for normalized service status.
package domain

// Severity is the shared classification for a single incident and for a
// service's overall state.
type Severity string

// Severity values.
const (
	SeverityNone        Severity = "none"
	SeverityMinor       Severity = "minor"
	SeverityMajor       Severity = "major"
	SeverityMaintenance Severity = "maintenance"
)

// IsValid checks if the severity is valid.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityNone, SeverityMinor, SeverityMajor, SeverityMaintenance:
		return true
	}
	return false
}

// rank encodes the single total order used everywhere:
// none < maintenance < minor < major. Maintenance is planned work, so it
// ranks below an unplanned minor incident.
func (s Severity) rank() int {
	switch s {
	case SeverityMajor:
		return 3
	case SeverityMinor:
		return 2
	case SeverityMaintenance:
		return 1
	default:
		return 0
	}
}

// Rank returns the position of the severity in the total order.
// Higher means more severe.
func (s Severity) Rank() int {
	return s.rank()
}

// WorstOf returns the most severe of the given severities,
// or SeverityNone when the list is empty.
func WorstOf(severities ...Severity) Severity {
	worst := SeverityNone
	for _, s := range severities {
		if s.rank() > worst.rank() {
			worst = s
		}
	}
	return worst
}
