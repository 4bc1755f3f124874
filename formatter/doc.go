// Package formatter defines how log messages are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// Two formatters are built in. LineFormatter emits the message text
// followed by a single newline and nothing else; it is the default for
// every handler and the only format the file sink persists. TagFormatter
// prefixes the line with the severity in brackets ("[WARNING] ...") for
// console output where the classification should be visible.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
