package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range []Severity{SeverityNone, SeverityMinor, SeverityMajor, SeverityMaintenance} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}
	assert.False(t, Severity("critical").IsValid())
	assert.False(t, Severity("").IsValid())
}

func TestSeverity_Rank_TotalOrder(t *testing.T) {
	// none < maintenance < minor < major
	assert.Less(t, SeverityNone.Rank(), SeverityMaintenance.Rank())
	assert.Less(t, SeverityMaintenance.Rank(), SeverityMinor.Rank())
	assert.Less(t, SeverityMinor.Rank(), SeverityMajor.Rank())
}

func TestWorstOf(t *testing.T) {
	tests := []struct {
		name       string
		severities []Severity
		want       Severity
	}{
		{name: "empty", severities: nil, want: SeverityNone},
		{name: "single", severities: []Severity{SeverityMinor}, want: SeverityMinor},
		{name: "major beats minor", severities: []Severity{SeverityMinor, SeverityMajor}, want: SeverityMajor},
		{name: "minor beats maintenance", severities: []Severity{SeverityMaintenance, SeverityMinor}, want: SeverityMinor},
		{name: "maintenance beats none", severities: []Severity{SeverityNone, SeverityMaintenance}, want: SeverityMaintenance},
		{name: "all none", severities: []Severity{SeverityNone, SeverityNone}, want: SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorstOf(tt.severities...))
		})
	}
}

func TestServiceStatus_HasActiveIncident(t *testing.T) {
	healthy := ServiceStatus{CurrentStatus: SeverityNone}
	assert.False(t, healthy.HasActiveIncident())

	degraded := ServiceStatus{CurrentStatus: SeverityMinor}
	assert.True(t, degraded.HasActiveIncident())
}
