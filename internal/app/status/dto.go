package status

import (
	"cyborgarena/internal/app/game"
	"cyborgarena/internal/app/ports"
)

type Response struct {
	State      game.State            `json:"state"`
	Rounds     int                   `json:"rounds"`
	Remaining  int                   `json:"remaining"`
	PlayerDead bool                  `json:"player_dead"`
	Metrics    ports.MetricsSnapshot `json:"metrics"`
}
