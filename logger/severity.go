package logger

import "github.com/routelog/routelog/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	WarningSeverity      = core.Warning
	ErrorSeverity        = core.Error
	FatalErrorSeverity   = core.FatalError
	UnclassifiedSeverity = core.Unclassified
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
