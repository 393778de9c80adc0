package rng

import "fmt"

// Sequence replays scripted draws in order. Values are returned as given,
// without reducing them modulo n, so tests can force boundary rolls and
// deliberately invalid ones. Running past the script panics because a test
// that draws more than it planned is wrong.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence scripts the given draws.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value.
func (s *Sequence) IntN(n int) int {
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("rng: sequence exhausted after %d draws (IntN(%d))", s.pos, n))
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

// Push appends more draws to the script.
func (s *Sequence) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted draws are left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.pos
}

// Drawn reports how many draws have been consumed.
func (s *Sequence) Drawn() int {
	return s.pos
}
