package arena

import "testing"

func TestRecommendMove_SymmetricArenaHasNoAdvice(t *testing.T) {
	a := mustArena(t, 5, 5, nil)
	if !a.AddPlayer(3, 3) {
		t.Fatalf("AddPlayer failed")
	}
	if got := Distances(a, Pos(3, 3)); got != [NumDirections]int{2, 2, 2, 2} {
		t.Fatalf("distances=%v want [2 2 2 2]", got)
	}
	if d, ok := RecommendMove(a, Pos(3, 3)); ok {
		t.Fatalf("expected no recommendation, got %s", d)
	}
}

func TestRecommendMove_PrefersMostOpenDirection(t *testing.T) {
	a := mustArena(t, 7, 7, nil)
	mustWall(t, a, 3, 4)
	if got := Distances(a, Pos(4, 4)); got != [NumDirections]int{1, 3, 3, 3} {
		t.Fatalf("distances=%v want [1 3 3 3]", got)
	}
	d, ok := RecommendMove(a, Pos(4, 4))
	if !ok || d != East {
		t.Fatalf("RecommendMove=(%s,%v) want (east,true)", d, ok)
	}
}

func TestRecommendMove_CyborgsObstructRays(t *testing.T) {
	a := mustArena(t, 5, 5, nil)
	if !a.AddCyborg(3, 4, 1) {
		t.Fatalf("AddCyborg failed")
	}
	if got := Distances(a, Pos(3, 3)); got != [NumDirections]int{2, 1, 2, 2} {
		t.Fatalf("distances=%v want [2 1 2 2]", got)
	}
	d, ok := RecommendMove(a, Pos(3, 3))
	if !ok || d != North {
		t.Fatalf("RecommendMove=(%s,%v) want (north,true)", d, ok)
	}
}

func TestRecommendMove_CornerAndOutOfBounds(t *testing.T) {
	a := mustArena(t, 3, 3, nil)
	if got := Distances(a, Pos(1, 1)); got != [NumDirections]int{0, 2, 2, 0} {
		t.Fatalf("distances=%v want [0 2 2 0]", got)
	}
	d, ok := RecommendMove(a, Pos(1, 1))
	if !ok || d != East {
		t.Fatalf("RecommendMove=(%s,%v) want (east,true)", d, ok)
	}
	if _, ok := RecommendMove(a, Pos(4, 4)); ok {
		t.Fatalf("expected no recommendation outside the arena")
	}
}
