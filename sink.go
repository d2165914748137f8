package logutil

import (
	"io"
	"os"
	"sync"
)

// Sink is a destination that records a formatted log line.
type Sink interface {
	Write(level Level, line string)
	Close() error
}

// ConsoleSink writes formatted lines to the developer console.
// Fire-and-forget: write errors on the console stream are ignored.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a console sink targeting w, defaulting to stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

// Write emits one line. The lock keeps concurrent lines from interleaving.
func (s *ConsoleSink) Write(_ Level, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.w, line)
	io.WriteString(s.w, "\n")
}

// Close is a no-op; the console stream is not owned by the sink.
func (s *ConsoleSink) Close() error {
	return nil
}
