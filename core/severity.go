package core

import "strings"

// Severity represents the classification of a log message
type Severity int8

const (
	// Warning for messages written to the diagnostic stream
	Warning Severity = iota
	// Error for messages persisted to the error file
	Error
	// FatalError for messages that terminate dispatch with a hard failure
	FatalError
	// Unclassified for messages no specific handler recognizes
	Unclassified
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case FatalError:
		return "FATAL"
	case Unclassified:
		return "UNCLASSIFIED"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity. Strings that name no
// known classification map to Unclassified, the catch-all value.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(s) {
	case "WARN", "WARNING":
		return Warning
	case "ERROR":
		return Error
	case "FATAL", "FATALERROR", "FATAL_ERROR":
		return FatalError
	default:
		return Unclassified
	}
}
