package dice

// Scripted is a Roller that replays fixed draws, for tests.
// When a queue runs dry it falls back to 0, which selects the first bucket
// of any weighted table and the low end of any range.
type Scripted struct {
	Floats []float64
	Ints   []int
}

// NewScripted returns a Scripted roller that replays ints first-in first-out.
func NewScripted(ints ...int) *Scripted {
	return &Scripted{Ints: ints}
}

// WithFloats queues float draws and returns the roller for chaining.
func (s *Scripted) WithFloats(floats ...float64) *Scripted {
	s.Floats = append(s.Floats, floats...)
	return s
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	f := s.Floats[0]
	s.Floats = s.Floats[1:]
	return f
}

// IntN returns the next queued int reduced modulo n.
func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}
