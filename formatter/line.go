package formatter

import (
	"bytes"
	"io"

	"github.com/routelog/routelog/core"
)

// LineFormatter emits the message text followed by a single newline.
// This is the exact format the file sink persists, so it is the default
// formatter for every handler.
type LineFormatter struct{}

// NewLineFormatter creates a new line formatter
func NewLineFormatter() *LineFormatter {
	return &LineFormatter{}
}

// Format formats a message as its text plus a trailing newline
func (f *LineFormatter) Format(msg *core.Message) ([]byte, error) {
	text := msg.Text()
	out := make([]byte, 0, len(text)+1)
	out = append(out, text...)
	out = append(out, '\n')
	return out, nil
}

// FormatTo formats a message and writes it directly to the writer
func (f *LineFormatter) FormatTo(msg *core.Message, w io.Writer) error {
	buf := getBuffer()
	buf.WriteString(msg.Text())
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// TagFormatter prefixes each line with the message severity in brackets,
// e.g. "[WARNING] low disk space". Intended for console output; the file
// sink's persisted line must stay untagged.
type TagFormatter struct{}

// NewTagFormatter creates a new tag formatter
func NewTagFormatter() *TagFormatter {
	return &TagFormatter{}
}

// pre-formatted severity tags to avoid per-call concatenation
var severityTags = [...]string{
	core.Warning:      "[WARNING] ",
	core.Error:        "[ERROR] ",
	core.FatalError:   "[FATAL] ",
	core.Unclassified: "[UNCLASSIFIED] ",
}

func severityTag(s core.Severity) string {
	if int(s) >= 0 && int(s) < len(severityTags) {
		return severityTags[s]
	}
	return "[UNKNOWN] "
}

// Format formats a message as "[SEVERITY] text\n"
func (f *TagFormatter) Format(msg *core.Message) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(msg, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a message and writes it directly to the writer
func (f *TagFormatter) FormatTo(msg *core.Message, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(msg, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *TagFormatter) formatToBuffer(msg *core.Message, buf *bytes.Buffer) {
	buf.WriteString(severityTag(msg.Severity()))
	buf.WriteString(msg.Text())
	buf.WriteByte('\n')
}
