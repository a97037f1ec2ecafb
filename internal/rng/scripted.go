package rng

// Scripted is a Source that replays a fixed list of values, cycling when it
// runs out. Intn(n) returns the next value modulo n; NormFloat64 always
// returns 0.
type Scripted struct {
	vals []int
	pos  int
}

// NewScripted returns a Scripted source over vals. With no values every draw
// is 0.
func NewScripted(vals ...int) *Scripted {
	if len(vals) == 0 {
		vals = []int{0}
	}
	return &Scripted{vals: vals}
}

// Always returns Dice whose every draw is v (reduced modulo the range).
// Always(0) makes every OneIn and positive Magik roll succeed.
func Always(v int) *Dice {
	return New(NewScripted(v))
}

func (s *Scripted) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Scripted) NormFloat64() float64 { return 0 }

// Draws reports how many values have been consumed.
func (s *Scripted) Draws() int { return s.pos }
