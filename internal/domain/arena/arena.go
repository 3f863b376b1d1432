package arena

import "slices"

// Arena owns the wall grid, the player and the cyborgs. It is not safe for
// concurrent use; one turn is resolved at a time.
type Arena struct {
	grid    WallGrid
	rules   Rules
	rng     Random
	player  *Player
	cyborgs []*Cyborg
}

func NewArena(rows, cols int, rules Rules, rng Random) (*Arena, error) {
	grid, err := NewWallGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNoRandom
	}
	return &Arena{
		grid:    grid,
		rules:   rules,
		rng:     rng,
		cyborgs: make([]*Cyborg, 0, rules.MaxCyborgs),
	}, nil
}

func (a *Arena) Rows() int       { return a.grid.Rows() }
func (a *Arena) Cols() int       { return a.grid.Cols() }
func (a *Arena) Rules() Rules    { return a.rules }
func (a *Arena) Player() *Player { return a.player }
func (a *Arena) CyborgCount() int {
	return len(a.cyborgs)
}

// Cyborgs returns a snapshot of the cyborgs in their current order.
func (a *Arena) Cyborgs() []Cyborg {
	out := make([]Cyborg, 0, len(a.cyborgs))
	for _, c := range a.cyborgs {
		out = append(out, *c)
	}
	return out
}

func (a *Arena) InBounds(r, c int) bool {
	return a.grid.InBounds(Pos(r, c))
}

func (a *Arena) HasWallAt(r, c int) (bool, error) {
	return a.grid.HasWallAt(Pos(r, c))
}

func (a *Arena) NumberOfCyborgsAt(r, c int) int {
	p := Pos(r, c)
	n := 0
	for _, cy := range a.cyborgs {
		if cy.pos == p {
			n++
		}
	}
	return n
}

func (a *Arena) PlaceWallAt(r, c int) error {
	return a.grid.PlaceWallAt(Pos(r, c))
}

func (a *Arena) AddCyborg(r, c, channel int) bool {
	p := Pos(r, c)
	if a.grid.blocked(p) {
		return false
	}
	if a.player != nil && a.player.pos == p {
		return false
	}
	if channel < 1 || channel > a.rules.Channels {
		return false
	}
	if len(a.cyborgs) >= a.rules.MaxCyborgs {
		return false
	}
	cy, err := NewCyborg(a, p, channel)
	if err != nil {
		return false
	}
	a.cyborgs = append(a.cyborgs, cy)
	return true
}

func (a *Arena) AddPlayer(r, c int) bool {
	p := Pos(r, c)
	if a.player != nil || a.grid.blocked(p) {
		return false
	}
	if a.NumberOfCyborgsAt(r, c) > 0 {
		return false
	}
	pl, err := NewPlayer(a, p)
	if err != nil {
		return false
	}
	a.player = pl
	return true
}

// TurnReport summarises one resolved cyborg turn.
type TurnReport struct {
	Responsive   bool
	Destroyed    int
	Remaining    int
	PlayerKilled bool
}

func (r TurnReport) Message() string {
	if r.Destroyed > 0 {
		return "Some cyborgs have been destroyed."
	}
	return "No cyborgs were destroyed."
}

// ResolveCyborgTurn broadcasts dir on channel and moves every cyborg once.
// With probability 1/2 the cyborgs on channel obey (forced move) while the rest
// wander; otherwise all of them wander. Cyborgs left without health are
// removed, then any survivor standing on the player kills it.
func (a *Arena) ResolveCyborgTurn(channel int, dir Direction) (TurnReport, error) {
	if channel < 1 || channel > a.rules.Channels {
		return TurnReport{}, ErrInvalidChannel
	}
	if !dir.Valid() {
		return TurnReport{}, ErrInvalidDirection
	}

	report := TurnReport{Responsive: a.rng.IntRange(0, 1) == 0}
	before := len(a.cyborgs)
	for _, cy := range a.cyborgs {
		if report.Responsive && cy.channel == channel {
			cy.ForceMove(dir)
		} else {
			cy.Move()
		}
	}

	a.cyborgs = slices.DeleteFunc(a.cyborgs, func(cy *Cyborg) bool { return cy.IsDead() })
	report.Destroyed = before - len(a.cyborgs)
	report.Remaining = len(a.cyborgs)

	if a.player == nil || a.player.dead {
		return report, nil
	}
	for _, cy := range a.cyborgs {
		if cy.pos == a.player.pos {
			a.player.SetDead()
			report.PlayerKilled = true
			break
		}
	}
	return report, nil
}
