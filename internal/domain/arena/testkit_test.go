package arena

import "testing"

// seqRandom replays fixed values and falls back to lo once exhausted.
type seqRandom struct {
	vals  []int
	calls int
}

func (s *seqRandom) IntRange(lo, hi int) int {
	s.calls++
	if len(s.vals) == 0 {
		return lo
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

var _ Random = (*seqRandom)(nil)

func mustArena(t *testing.T, rows, cols int, rng Random) *Arena {
	t.Helper()
	if rng == nil {
		rng = &seqRandom{}
	}
	a, err := NewArena(rows, cols, DefaultRules(), rng)
	if err != nil {
		t.Fatalf("NewArena(%d,%d): %v", rows, cols, err)
	}
	return a
}

func mustWall(t *testing.T, a *Arena, r, c int) {
	t.Helper()
	if err := a.PlaceWallAt(r, c); err != nil {
		t.Fatalf("PlaceWallAt(%d,%d): %v", r, c, err)
	}
}
