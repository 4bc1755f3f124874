package logger

import (
	"sync"

	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The default chain routes warnings to stderr and terminates on
	// fatal and unclassified messages. No file handler: the error-file
	// target is a caller-supplied path.
	chain, err := handler.NewChain(
		handler.NewFatalHandler(),
		handler.NewConsoleHandler(handler.ConsoleConfig{}),
		handler.NewCatchAllHandler(),
	)
	if err != nil {
		// The fixed default wiring never violates the chain invariants.
		panic(err)
	}

	defaultLogger = New(chain)
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log dispatches a message using the default logger
func Log(severity core.Severity, text string) error {
	return Default().Log(severity, text)
}

// Warn dispatches a Warning message using the default logger
func Warn(text string) error {
	return Default().Warn(text)
}

// Error dispatches an Error message using the default logger
func Error(text string) error {
	return Default().Error(text)
}

// Fatal dispatches a FatalError message using the default logger
func Fatal(text string) error {
	return Default().Fatal(text)
}

// Unclassified dispatches an Unclassified message using the default logger
func Unclassified(text string) error {
	return Default().Unclassified(text)
}

// Warnf dispatches a formatted Warning message using the default logger
func Warnf(format string, args ...interface{}) error {
	return Default().Warnf(format, args...)
}

// Errorf dispatches a formatted Error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// Fatalf dispatches a formatted FatalError message using the default logger
func Fatalf(format string, args ...interface{}) error {
	return Default().Fatalf(format, args...)
}
