package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Severity expresses user impact of an insight. Severities are totally
// ordered: critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities returns all valid severities in descending order of impact
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// Validate checks if the Severity is one of the closed set
func (s Severity) Validate() error {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return nil
	}
	return goerr.New("invalid severity", goerr.V("severity", s))
}

// Weight returns the sort weight of the severity. Higher means more severe.
// Unknown severities sort below low.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Marker returns the visual marker used in rendered issue titles
func (s Severity) Marker() string {
	switch s {
	case SeverityCritical:
		return "🔴"
	case SeverityHigh:
		return "🟠"
	case SeverityMedium:
		return "🟡"
	case SeverityLow:
		return "🟢"
	}
	return "⚪"
}

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}
