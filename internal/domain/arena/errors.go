package arena

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition  = errors.New("invalid arena position")
	ErrInvalidArenaSize = errors.New("invalid arena size")
	ErrInvalidRules     = errors.New("invalid arena rules")
	ErrInvalidChannel   = errors.New("invalid channel")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrNoArena          = errors.New("agent must be created in some arena")
	ErrNoRandom         = errors.New("arena requires a random source")
)

// PositionError reports which operation received an out-of-bounds position.
type PositionError struct {
	Op  string
	Pos Position
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %v (%d,%d)", e.Op, ErrInvalidPosition, e.Pos.Row, e.Pos.Col)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}
