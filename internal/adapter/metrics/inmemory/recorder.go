package inmemory

import (
	"sync"

	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"
)

type Recorder struct {
	mu          sync.Mutex
	playerTurns uint64
	cyborgTurns uint64
	responsive  uint64
	destroyed   uint64
	byOutcome   map[string]uint64
	result      string
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordPlayerTurn(outcome arena.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playerTurns++
	r.byOutcome[string(outcome.Kind)]++
}

func (r *Recorder) RecordCyborgTurn(report arena.TurnReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cyborgTurns++
	if report.Responsive {
		r.responsive++
	}
	r.destroyed += uint64(report.Destroyed)
}

func (r *Recorder) RecordSessionEnd(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = result
}

func (r *Recorder) Snapshot() ports.MetricsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := ports.MetricsSnapshot{
		PlayerTurns:      r.playerTurns,
		CyborgTurns:      r.cyborgTurns,
		ResponsiveRounds: r.responsive,
		CyborgsDestroyed: r.destroyed,
		ByOutcome:        make(map[string]uint64, len(r.byOutcome)),
		Result:           r.result,
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}
