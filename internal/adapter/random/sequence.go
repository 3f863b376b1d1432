package random

// Sequence replays scripted values, one per draw. Once exhausted it returns
// the low bound, which keeps scripted scenarios short.
type Sequence struct {
	values []int
	draws  int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

func (s *Sequence) IntRange(lo, hi int) int {
	s.draws++
	if len(s.values) == 0 {
		if hi < lo {
			return hi
		}
		return lo
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func (s *Sequence) Draws() int     { return s.draws }
func (s *Sequence) Remaining() int { return len(s.values) }
