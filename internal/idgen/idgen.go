// Package idgen hands out process-local identities.  Cinemas, shows, movies,
// customers and tickets all receive their IDs from a Generator injected at
// construction time instead of from package-level counters.
package idgen

import "sync/atomic"

// Generator returns a new identity on every call.  Implementations must be
// safe for concurrent use.
type Generator interface {
	Next() uint64
}

// Sequence is a monotonic Generator starting at 1.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence returns a Sequence whose first Next() is start+1.  Pass 0 for a
// fresh sequence or the highest persisted ID to continue after it.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next returns the next identity.
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}

// Last returns the most recently issued identity, or the starting value if
// none has been issued yet.
func (s *Sequence) Last() uint64 {
	return s.last.Load()
}
