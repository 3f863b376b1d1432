package ports

import (
	"context"

	"cyborgarena/internal/domain/arena"
)

type TurnPhase string

const (
	PhaseSetup   TurnPhase = "setup"
	PhasePlayer  TurnPhase = "player"
	PhaseCyborgs TurnPhase = "cyborgs"
)

// TurnRecord is one journal entry: the frame shown after a turn resolved.
type TurnRecord struct {
	Round   int
	Phase   TurnPhase
	Command string
	Frame   arena.Frame
}

type TurnJournal interface {
	Append(ctx context.Context, record TurnRecord) error
	List(ctx context.Context, limit int) ([]TurnRecord, error)
}
