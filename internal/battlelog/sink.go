// Package battlelog provides the ordered narrative log for a battle run.
//
// The sink is the single shared event record for one simulation run: every
// component that narrates battle events appends to the same instance, which is
// constructed once and passed explicitly rather than held as a hidden global.
package battlelog

import (
	"fmt"
	"io"
	"sync"
)

// Sink is an append-only, ordered record of battle events. Each entry is
// forwarded to the configured writer as it is appended, and retained in memory
// for later inspection.
type Sink struct {
	mu    sync.Mutex
	out   io.Writer
	lines []string
}

// New creates a sink forwarding entries to out. A nil writer keeps entries in
// memory only, which is what tests normally want.
func New(out io.Writer) *Sink {
	return &Sink{out: out}
}

// Log appends a single entry.
func (s *Sink) Log(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, message)
	if s.out != nil {
		fmt.Fprintln(s.out, message)
	}
}

// Logf appends a formatted entry.
func (s *Sink) Logf(format string, args ...any) {
	s.Log(fmt.Sprintf(format, args...))
}

// Clear discards all retained entries.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the retained entries in emission order.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]string, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Len returns the number of retained entries.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
