// Package core defines the shared types used across the routelog library.
//
// It provides the Severity type, a closed four-value classification that
// controls which handler consumes a message, and the Message type, an
// immutable pairing of a severity with a text payload.
//
// A Message is constructed once per log event and read by whichever
// handler claims it. It carries no timestamp, no structured fields, and
// no caller information: routing is decided by the severity alone, and
// the sinks persist the text verbatim.
package core
