package logger

import (
	"fmt"

	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/handler"
)

// Logger routes messages through a dispatch chain (immutable)
type Logger struct {
	chain *handler.Chain
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handlers []handler.Handler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandlers appends handlers to the chain in dispatch order
func (b *Builder) WithHandlers(handlers ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, handlers...)
	return b
}

// Build creates the Logger instance. It fails if the handler sequence
// violates the chain invariants (nil handler, duplicate instance).
func (b *Builder) Build() (*Logger, error) {
	chain, err := handler.NewChain(b.handlers...)
	if err != nil {
		return nil, err
	}
	return &Logger{chain: chain}, nil
}

// New creates a Logger over an already constructed chain.
func New(chain *handler.Chain) *Logger {
	return &Logger{chain: chain}
}

// Log constructs a message with the given severity and text and
// dispatches it. The returned error is the claiming handler's error;
// for FatalError and Unclassified (with the catch-all present) that is
// a *handler.TerminalError. An unclaimed message returns nil.
func (l *Logger) Log(severity core.Severity, text string) error {
	if l.chain == nil {
		return nil
	}
	return l.chain.Handle(core.New(severity, text))
}

// Dispatch submits an already constructed message and reports whether
// any handler claimed it.
func (l *Logger) Dispatch(msg *core.Message) (bool, error) {
	if l.chain == nil {
		return false, nil
	}
	return l.chain.Dispatch(msg)
}

// Warn dispatches a Warning message
func (l *Logger) Warn(text string) error {
	return l.Log(core.Warning, text)
}

// Error dispatches an Error message
func (l *Logger) Error(text string) error {
	return l.Log(core.Error, text)
}

// Fatal dispatches a FatalError message. With the standard fatal
// handler in the chain the returned error's text is exactly the
// message text.
func (l *Logger) Fatal(text string) error {
	return l.Log(core.FatalError, text)
}

// Unclassified dispatches an Unclassified message
func (l *Logger) Unclassified(text string) error {
	return l.Log(core.Unclassified, text)
}

// Warnf dispatches a formatted Warning message
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(core.Warning, fmt.Sprintf(format, args...))
}

// Errorf dispatches a formatted Error message
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(core.Error, fmt.Sprintf(format, args...))
}

// Fatalf dispatches a formatted FatalError message
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	return l.Log(core.FatalError, fmt.Sprintf(format, args...))
}

// Stats returns a snapshot of the underlying chain's dispatch statistics
func (l *Logger) Stats() handler.Snapshot {
	if l.chain == nil {
		return handler.Snapshot{}
	}
	return l.chain.Stats()
}

// Close closes the underlying chain and its handlers
func (l *Logger) Close() error {
	if l.chain == nil {
		return nil
	}
	return l.chain.Close()
}
