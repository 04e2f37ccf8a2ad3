package domain

import "fmt"

// Trace is the append-only, human-readable log of a single pipeline run.
// The zero value is ready to use.
type Trace struct {
	entries []string
}

// Add appends a formatted entry.
func (t *Trace) Add(format string, args ...any) {
	t.entries = append(t.entries, fmt.Sprintf(format, args...))
}

// Len returns the number of entries recorded so far.
func (t *Trace) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the recorded entries in append order.
func (t *Trace) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}
