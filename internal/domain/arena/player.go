package arena

import "fmt"

type OutcomeKind string

const (
	OutcomeStood   OutcomeKind = "stood"
	OutcomeMoved   OutcomeKind = "moved"
	OutcomeBlocked OutcomeKind = "blocked"
	OutcomeKilled  OutcomeKind = "killed"
	OutcomeDead    OutcomeKind = "dead"
)

// Outcome describes the result of a single player action.
type Outcome struct {
	Kind      OutcomeKind
	Direction Direction
}

func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeMoved:
		return fmt.Sprintf("Player moved %s.", o.Direction)
	case OutcomeBlocked:
		return "Player couldn't move; player stands."
	case OutcomeKilled:
		return "Player walked into a cyborg and died."
	case OutcomeDead:
		return "Player is dead."
	default:
		return "Player stands."
	}
}

type Player struct {
	arena *Arena
	pos   Position
	dead  bool
}

func NewPlayer(a *Arena, p Position) (*Player, error) {
	if a == nil {
		return nil, ErrNoArena
	}
	if !a.grid.InBounds(p) {
		return nil, &PositionError{Op: "NewPlayer", Pos: p}
	}
	return &Player{arena: a, pos: p}, nil
}

func (p *Player) Position() Position { return p.pos }
func (p *Player) IsDead() bool       { return p.dead }

// SetDead is irreversible.
func (p *Player) SetDead() {
	p.dead = true
}

func (p *Player) Stand() Outcome {
	if p.dead {
		return Outcome{Kind: OutcomeDead}
	}
	return Outcome{Kind: OutcomeStood}
}

func (p *Player) Move(d Direction) Outcome {
	if p.dead {
		return Outcome{Kind: OutcomeDead, Direction: d}
	}
	next, ok := p.arena.grid.attemptMove(p.pos, d)
	if !ok {
		return Outcome{Kind: OutcomeBlocked, Direction: d}
	}
	p.pos = next
	if p.arena.NumberOfCyborgsAt(next.Row, next.Col) > 0 {
		p.SetDead()
		return Outcome{Kind: OutcomeKilled, Direction: d}
	}
	return Outcome{Kind: OutcomeMoved, Direction: d}
}
