package handler

import (
	"github.com/routelog/routelog/core"
)

// unprocessedPrefix is the fixed literal prepended to the text of a
// message the catch-all handler rejects.
const unprocessedPrefix = "Unprocessed message: "

// TerminalError is returned when dispatch terminates by policy rather
// than by an I/O failure: a FatalError message always terminates, and
// an Unclassified message terminates when the catch-all handler is in
// the chain. Callers should treat it as an expected control path for
// those two severities and detect it with errors.As.
type TerminalError struct {
	// Severity is the classification that triggered termination
	Severity core.Severity
	// Text is the original message text, verbatim
	Text string
}

// Error returns the message text for FatalError terminations and the
// text prefixed with "Unprocessed message: " for the catch-all case.
func (e *TerminalError) Error() string {
	if e.Severity == core.Unclassified {
		return unprocessedPrefix + e.Text
	}
	return e.Text
}

// FatalHandler consumes FatalError messages by terminating dispatch
// with a TerminalError carrying the message text.
type FatalHandler struct{}

// NewFatalHandler creates a new fatal handler
func NewFatalHandler() *FatalHandler {
	return &FatalHandler{}
}

// Severity reports core.FatalError
func (h *FatalHandler) Severity() core.Severity {
	return core.FatalError
}

// Emit always returns a TerminalError whose Error() is the message text
func (h *FatalHandler) Emit(msg *core.Message) error {
	return &TerminalError{Severity: core.FatalError, Text: msg.Text()}
}

// Close is a no-op
func (h *FatalHandler) Close() error {
	return nil
}

// CatchAllHandler consumes Unclassified messages by terminating
// dispatch with a TerminalError. It exists to make "no handler claimed
// this message" loud; without it in the chain, an Unclassified message
// falls off the end silently like any other unmatched severity.
type CatchAllHandler struct{}

// NewCatchAllHandler creates a new catch-all handler
func NewCatchAllHandler() *CatchAllHandler {
	return &CatchAllHandler{}
}

// Severity reports core.Unclassified
func (h *CatchAllHandler) Severity() core.Severity {
	return core.Unclassified
}

// Emit always returns a TerminalError whose Error() embeds the message text
func (h *CatchAllHandler) Emit(msg *core.Message) error {
	return &TerminalError{Severity: core.Unclassified, Text: msg.Text()}
}

// Close is a no-op
func (h *CatchAllHandler) Close() error {
	return nil
}
