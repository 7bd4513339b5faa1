// Package notification implements the per-request collector that accumulates
// business-rule violations and failure signals without using errors as
// control flow. Services write into it; the transport boundary reads it once
// to decide the response outcome.
package notification

import "strings"

// Severity classifies the most recent addition to the collector.
type Severity int

const (
	// Expected is a normal business-rule rejection the caller can correct.
	Expected Severity = iota
	// NotFound marks a missing resource on read/delete flows.
	NotFound
	// Unexpected marks an infrastructure failure or unanticipated error.
	Unexpected
)

func (s Severity) String() string {
	switch s {
	case NotFound:
		return "not_found"
	case Unexpected:
		return "unexpected"
	default:
		return "expected"
	}
}

// Notification accumulates messages in insertion order together with a single
// severity tag. The tag reflects the most recent Add call, not a worst-of
// aggregate, so callers must inspect it before adding further messages.
//
// A Notification belongs to exactly one request and is not safe for
// concurrent use.
type Notification struct {
	messages []string
	severity Severity
}

// New returns an empty collector with severity Expected.
func New() *Notification {
	return &Notification{}
}

// Add appends a message and overwrites the current severity.
func (n *Notification) Add(message string, severity Severity) {
	n.severity = severity
	n.messages = append(n.messages, message)
}

// AddMessages appends validator output in order, leaving the severity
// untouched. Validation failures are always Expected-class rejections.
func (n *Notification) AddMessages(messages []string) {
	n.messages = append(n.messages, messages...)
}

// Any reports whether at least one message has been recorded.
func (n *Notification) Any() bool {
	return len(n.messages) > 0
}

// All returns the recorded messages in insertion order. The collector is not
// consumed; repeated calls return the same content.
func (n *Notification) All() []string {
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

// Severity returns the severity of the most recent Add.
func (n *Notification) Severity() Severity {
	return n.severity
}

// Summary returns every message followed by a line break, or the empty string
// when nothing has been recorded.
func (n *Notification) Summary() string {
	if len(n.messages) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range n.messages {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	return b.String()
}
