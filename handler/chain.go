package handler

import (
	"fmt"

	"github.com/routelog/routelog/core"
)

// Chain dispatches messages through an ordered sequence of handlers.
// The first handler whose severity matches the message claims it and
// dispatch stops; an unclaimed message falls off the end silently.
//
// The sequence is fixed at construction. Order matters only when two
// handlers share a severity, in which case the earlier one wins.
type Chain struct {
	handlers []Handler
	stats    *Stats
}

// NewChain creates a chain from the given handlers, dispatched in order.
// A nil handler or the same handler instance appearing twice is rejected.
func NewChain(handlers ...Handler) (*Chain, error) {
	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("handler at position %d is nil", i)
		}
		for j := i + 1; j < len(handlers); j++ {
			if handlers[j] == h {
				return nil, fmt.Errorf("handler at position %d appears again at position %d", i, j)
			}
		}
	}

	chain := make([]Handler, len(handlers))
	copy(chain, handlers)

	return &Chain{
		handlers: chain,
		stats:    NewStats(),
	}, nil
}

// Dispatch routes the message to the first handler whose severity
// matches. It reports whether any handler claimed the message, along
// with the claiming handler's error. An unclaimed message is dropped:
// Dispatch returns (false, nil) and counts the drop.
func (c *Chain) Dispatch(msg *core.Message) (bool, error) {
	if msg == nil {
		return false, nil
	}

	for _, h := range c.handlers {
		if h.Severity() != msg.Severity() {
			continue
		}
		c.stats.IncrementClaimed(msg.Severity())
		return true, h.Emit(msg)
	}

	c.stats.IncrementDropped()
	return false, nil
}

// Handle dispatches the message, discarding the claimed flag. A nil
// return means the message was either consumed without error or
// silently dropped.
func (c *Chain) Handle(msg *core.Message) error {
	_, err := c.Dispatch(msg)
	return err
}

// Handlers returns a copy of the chain's handler sequence in dispatch order.
func (c *Chain) Handlers() []Handler {
	out := make([]Handler, len(c.handlers))
	copy(out, c.handlers)
	return out
}

// Stats returns a snapshot of the chain's dispatch statistics
func (c *Chain) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// Close closes all handlers in the chain
func (c *Chain) Close() error {
	var lastErr error
	for _, h := range c.handlers {
		if err := h.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
