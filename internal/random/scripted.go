package random

// Scripted is a deterministic Source that replays a fixed list of values.
// Each value is reduced modulo the requested bound; the list wraps around
// when exhausted. Intended for tests.
type Scripted struct {
	values []int
	pos    int
}

// NewScripted returns a Source replaying values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("random: IntN called with non-positive bound")
	}
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Shuffle runs Fisher–Yates driven by the scripted values.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}

// Consumed reports how many values have been drawn.
func (s *Scripted) Consumed() int {
	return s.pos
}
