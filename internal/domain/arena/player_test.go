package arena

import "testing"

func TestPlayerMove_Outcomes(t *testing.T) {
	a := mustArena(t, 3, 3, nil)
	mustWall(t, a, 1, 2)
	if !a.AddCyborg(3, 2, 1) {
		t.Fatalf("AddCyborg failed")
	}
	if !a.AddPlayer(2, 2) {
		t.Fatalf("AddPlayer failed")
	}
	p := a.Player()

	out := p.Move(North)
	if out.Kind != OutcomeBlocked || p.Position() != Pos(2, 2) {
		t.Fatalf("move into wall: outcome=%+v pos=%+v", out, p.Position())
	}
	if got, want := out.Message(), "Player couldn't move; player stands."; got != want {
		t.Fatalf("message=%q want %q", got, want)
	}

	out = p.Move(East)
	if out.Kind != OutcomeMoved || p.Position() != Pos(2, 3) {
		t.Fatalf("move east: outcome=%+v pos=%+v", out, p.Position())
	}
	if got, want := out.Message(), "Player moved east."; got != want {
		t.Fatalf("message=%q want %q", got, want)
	}

	out = p.Move(East)
	if out.Kind != OutcomeBlocked || p.Position() != Pos(2, 3) {
		t.Fatalf("move off the edge: outcome=%+v pos=%+v", out, p.Position())
	}

	if out := p.Stand(); out.Kind != OutcomeStood || out.Message() != "Player stands." {
		t.Fatalf("stand outcome=%+v", out)
	}
}

func TestPlayerMove_IntoCyborgKills(t *testing.T) {
	a := mustArena(t, 2, 2, nil)
	if !a.AddCyborg(1, 2, 1) || !a.AddPlayer(1, 1) {
		t.Fatalf("setup failed")
	}
	p := a.Player()
	out := p.Move(East)
	if out.Kind != OutcomeKilled {
		t.Fatalf("expected OutcomeKilled, got %+v", out)
	}
	if got, want := out.Message(), "Player walked into a cyborg and died."; got != want {
		t.Fatalf("message=%q want %q", got, want)
	}
	if !p.IsDead() || p.Position() != Pos(1, 2) {
		t.Fatalf("expected dead player on (1,2), got dead=%v pos=%+v", p.IsDead(), p.Position())
	}
}

func TestPlayerDeath_IsMonotonic(t *testing.T) {
	rng := &seqRandom{}
	a := mustArena(t, 2, 2, rng)
	if !a.AddCyborg(1, 2, 1) || !a.AddPlayer(1, 1) {
		t.Fatalf("setup failed")
	}
	p := a.Player()
	p.Move(East)
	if !p.IsDead() {
		t.Fatalf("expected player dead")
	}
	for i := 0; i < 4; i++ {
		if out := p.Move(West); out.Kind != OutcomeDead {
			t.Fatalf("dead player moved: %+v", out)
		}
		if out := p.Stand(); out.Kind != OutcomeDead {
			t.Fatalf("dead player stood: %+v", out)
		}
		if _, err := a.ResolveCyborgTurn(1, South); err != nil {
			t.Fatalf("ResolveCyborgTurn: %v", err)
		}
		if !p.IsDead() {
			t.Fatalf("player revived after round %d", i)
		}
	}
	if p.Position() != Pos(1, 2) {
		t.Fatalf("dead player position changed to %+v", p.Position())
	}
}
