package handler

import (
	"github.com/routelog/routelog/core"
)

// Handler defines the interface for severity-bound log handlers
type Handler interface {
	// Severity reports the single classification this handler consumes.
	// The mapping is fixed at construction and never changes.
	Severity() core.Severity

	// Emit performs the handler's side effect for a message the chain
	// has already matched against Severity. A returned error terminates
	// the dispatch call; the message is considered consumed either way.
	Emit(msg *core.Message) error

	// Close closes the handler and releases resources
	Close() error
}

// Func adapts a plain function into a Handler bound to one severity.
type Func struct {
	severity core.Severity
	emit     func(*core.Message) error
}

// NewFunc creates a Handler that consumes the given severity by calling fn.
func NewFunc(severity core.Severity, fn func(*core.Message) error) *Func {
	return &Func{severity: severity, emit: fn}
}

// Severity reports the classification this handler consumes
func (f *Func) Severity() core.Severity {
	return f.severity
}

// Emit invokes the wrapped function
func (f *Func) Emit(msg *core.Message) error {
	if f.emit == nil {
		return nil
	}
	return f.emit(msg)
}

// Close is a no-op for function handlers
func (f *Func) Close() error {
	return nil
}
