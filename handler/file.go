package handler

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/formatter"
)

// FileHandler consumes Error messages by overwriting its target file
// with the message text. Every claimed message opens the file in
// truncate mode, writes a single line, and closes it, so the file
// always holds the most recent error and nothing else.
//
// A file that cannot be opened degrades to a skipped write: Emit
// returns nil and the skip is counted, queryable via SkippedWrites.
// That permissiveness mirrors the chain's silent-drop policy; callers
// that need the write guaranteed should watch the counter.
type FileHandler struct {
	filename  string
	formatter formatter.Formatter
	skipped   uint64
}

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Filename is the path to the target file. Required; there is no
	// default because the path is environment-specific by nature.
	Filename string
	// Formatter to use (default: LineFormatter)
	Formatter formatter.Formatter
}

// NewFileHandler creates a new file handler. The target file is
// truncated or created immediately so it exists in a known empty state
// before any message arrives; a failure to do so is counted as a
// skipped write, not returned.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter()
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		formatter: cfg.Formatter,
	}

	if file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644); err != nil {
		atomic.AddUint64(&h.skipped, 1)
	} else {
		file.Close()
	}

	return h, nil
}

// Severity reports core.Error
func (h *FileHandler) Severity() core.Severity {
	return core.Error
}

// Emit overwrites the target file with the formatted message
func (h *FileHandler) Emit(msg *core.Message) error {
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		atomic.AddUint64(&h.skipped, 1)
		return nil
	}

	data, err := h.formatter.Format(msg)
	if err != nil {
		file.Close()
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// SkippedWrites returns the number of writes skipped because the
// target file could not be opened.
func (h *FileHandler) SkippedWrites() uint64 {
	return atomic.LoadUint64(&h.skipped)
}

// Filename returns the configured target path.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Close is a no-op; the file is not held open between messages
func (h *FileHandler) Close() error {
	return nil
}
