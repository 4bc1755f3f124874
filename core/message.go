package core

// Message is a single log event: a severity classification paired with
// a text payload. It is immutable after construction, so a Message may
// be shared freely between the caller and the handlers that inspect it.
type Message struct {
	severity Severity
	text     string
}

// New creates a Message with the given severity and text payload.
func New(severity Severity, text string) *Message {
	return &Message{severity: severity, text: text}
}

// Severity returns the message's classification.
func (m *Message) Severity() Severity {
	return m.severity
}

// Text returns the message's text payload.
func (m *Message) Text() string {
	return m.text
}
