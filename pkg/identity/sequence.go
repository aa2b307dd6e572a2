package identity

// Sequence allocates process-local, monotonically increasing identifiers.
//
// The increment is a plain non-atomic write: a Sequence is NOT safe for
// concurrent use. Callers are expected to serialize all Next calls, e.g.
// through a single-writer loop that owns entity creation. Identifiers are
// unique within one process run only; nothing is persisted across
// restarts.
type Sequence struct {
	last uint64
}

// NewSequence returns a sequence whose first allocated identifier is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewSequenceFrom returns a sequence that resumes after last, so the first
// allocated identifier is last+1.
func NewSequenceFrom(last uint64) *Sequence {
	return &Sequence{last: last}
}

// Next allocates and returns the next identifier.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Current returns the most recently allocated identifier, or 0 when
// nothing has been allocated yet.
func (s *Sequence) Current() uint64 {
	return s.last
}
