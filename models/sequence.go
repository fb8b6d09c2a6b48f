package models

// Sequence is a fixed, ordered, cyclic list of emotion names. The cursor
// always stays within [0, Len).
type Sequence struct {
	names []string
	index int
}

func NewSequence(names []string) *Sequence {
	copied := make([]string, len(names))
	copy(copied, names)
	return &Sequence{names: copied}
}

// Next returns the name at the cursor and advances it cyclically.
func (s *Sequence) Next() string {
	name := s.names[s.index]
	s.index++
	if s.index >= len(s.names) {
		s.index = 0
	}
	return name
}

// Peek returns the name at the cursor without advancing.
func (s *Sequence) Peek() string {
	return s.names[s.index]
}

func (s *Sequence) Index() int {
	return s.index
}

func (s *Sequence) Len() int {
	return len(s.names)
}
