// Package handler provides the Handler interface, the dispatch Chain,
// and the built-in handlers that route log messages by severity.
//
// Each handler consumes exactly one severity, reported by its
// Severity method. A Chain holds handlers in an explicit ordered
// sequence; Dispatch walks that sequence and hands the message to the
// first handler whose severity matches, then stops. A message that
// reaches the end of the sequence unclaimed is dropped silently — that
// permissiveness is deliberate, and the CatchAllHandler exists for
// chains that want unclaimed messages to be loud instead.
//
// Built-in handlers:
//
//   - ConsoleHandler writes the message text to an io.Writer
//     (default: stderr), one line per message.
//   - FileHandler overwrites its target file with the message text on
//     every claimed message, so the file always holds the most recent
//     error line.
//   - FatalHandler and CatchAllHandler terminate dispatch by returning
//     a *TerminalError instead of performing I/O.
//   - MemoryHandler records claimed messages in memory, for tests.
//
// Dispatch is synchronous and single-threaded: forwarding is a direct
// call, there is no queueing, and a chain must be externally serialized
// if multiple goroutines submit through it. The Chain's counters use
// sync/atomic only so that the counters themselves stay coherent when
// that contract is violated.
//
// The Chain tracks per-severity claim counts and end-of-chain drops via
// the Stats type, which can be queried at runtime for monitoring.
package handler
