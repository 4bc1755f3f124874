package benchmark

import (
	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/handler"
)

// discardHandler claims one severity and throws the message away. It
// isolates dispatch cost from sink cost in the micro-benchmarks.
type discardHandler struct {
	severity core.Severity
}

func newDiscardHandler(severity core.Severity) handler.Handler {
	return &discardHandler{severity: severity}
}

func (h *discardHandler) Severity() core.Severity {
	return h.severity
}

func (h *discardHandler) Emit(msg *core.Message) error {
	_ = len(msg.Text())
	return nil
}

func (h *discardHandler) Close() error {
	return nil
}
