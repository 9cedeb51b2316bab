package providers

import (
	"strings"

	"github.com/bissquit/status-garden/internal/domain"
)

// Keyword rules, evaluated in order; first match wins. Maintenance terms are
// checked before major terms so "scheduled major upgrade" stays maintenance.
var (
	maintenanceTerms = []string{"maintenance", "scheduled"}
	majorTerms       = []string{"major", "outage", "critical"}
	minorTerms       = []string{"investigating", "monitoring", "identified", "latency", "degraded"}
	resolvedTerms    = []string{"resolved", "operational"}
)

// Classifier maps free-form incident text to a severity guess via ordered,
// case-insensitive substring rules. It is a heuristic, not a parser: false
// positives and negatives are an accepted product limitation.
type Classifier struct {
	extraMinor []string
}

// NewClassifier creates a classifier. Extra keywords are provider-specific
// terms treated as additional minor-severity signals.
func NewClassifier(keywords ...string) *Classifier {
	extra := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			extra = append(extra, k)
		}
	}
	return &Classifier{extraMinor: extra}
}

// Classify returns a severity guess for the given text. It is pure and
// total: any input yields a severity, defaulting to SeverityNone.
func (c *Classifier) Classify(text string) domain.Severity {
	lower := strings.ToLower(text)

	if containsAny(lower, maintenanceTerms) {
		return domain.SeverityMaintenance
	}
	if containsAny(lower, majorTerms) {
		return domain.SeverityMajor
	}
	if containsAny(lower, minorTerms) || containsAny(lower, c.extraMinor) {
		return domain.SeverityMinor
	}
	if containsAny(lower, resolvedTerms) {
		return domain.SeverityNone
	}
	return domain.SeverityNone
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
