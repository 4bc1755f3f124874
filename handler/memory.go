package handler

import (
	"sync"

	"github.com/routelog/routelog/core"
)

// MemoryHandler stores claimed messages in memory for testing purposes.
type MemoryHandler struct {
	severity core.Severity
	messages []*core.Message
	mu       sync.RWMutex
}

// NewMemoryHandler creates a memory handler bound to the given severity.
func NewMemoryHandler(severity core.Severity) *MemoryHandler {
	return &MemoryHandler{severity: severity}
}

// Severity reports the classification this handler consumes
func (h *MemoryHandler) Severity() core.Severity {
	return h.severity
}

// Emit records the message
func (h *MemoryHandler) Emit(msg *core.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	return nil
}

// Messages returns a copy of all recorded messages
func (h *MemoryHandler) Messages() []*core.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*core.Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Clear removes all recorded messages
func (h *MemoryHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = h.messages[:0]
}

// Close is a no-op for memory handlers
func (h *MemoryHandler) Close() error {
	return nil
}
