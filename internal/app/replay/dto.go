package replay

import (
	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"
)

// Request selects journal records. Zero FromRound/ToRound leave that side
// of the window open; a zero Limit returns everything.
type Request struct {
	Limit     int
	FromRound int
	ToRound   int
}

type Latest struct {
	Round     int                `json:"round"`
	Remaining int                `json:"remaining"`
	Player    arena.PlayerStatus `json:"player"`
}

type Response struct {
	Records []ports.TurnRecord
	Latest  Latest
}
