package ports

import "cyborgarena/internal/domain/arena"

type TurnMetrics interface {
	RecordPlayerTurn(outcome arena.Outcome)
	RecordCyborgTurn(report arena.TurnReport)
	RecordSessionEnd(result string)
}

type MetricsSnapshot struct {
	PlayerTurns      uint64            `json:"player_turns"`
	CyborgTurns      uint64            `json:"cyborg_turns"`
	ResponsiveRounds uint64            `json:"responsive_rounds"`
	CyborgsDestroyed uint64            `json:"cyborgs_destroyed"`
	ByOutcome        map[string]uint64 `json:"by_outcome"`
	Result           string            `json:"result,omitempty"`
}

type MetricsReader interface {
	Snapshot() MetricsSnapshot
}
