package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// SetAttribute writes the key-value pair to the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError attaches a failure to the span; the vertex is marked
// errored when the span ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// End completes the vertex.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	s.vertex.Done(err)
}
