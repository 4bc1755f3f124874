package handler

import (
	"io"
	"os"
	"sync"

	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/formatter"
)

// ConsoleHandler consumes Warning messages by writing them to a
// diagnostic stream, one line per message.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: LineFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter()
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the direct-write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Severity reports core.Warning
func (h *ConsoleHandler) Severity() core.Severity {
	return core.Warning
}

// Emit writes the formatted message to the configured writer
func (h *ConsoleHandler) Emit(msg *core.Message) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(msg, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	return writeErr
}

// Close is a no-op; the handler does not own its writer
func (h *ConsoleHandler) Close() error {
	return nil
}
