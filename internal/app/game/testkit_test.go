package game

import (
	"context"
	"testing"

	"cyborgarena/internal/adapter/random"
	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"
)

type scriptedSource struct {
	commands   []ports.PlayerCommand
	broadcasts []ports.Broadcast
	reads      int
}

func (s *scriptedSource) NextPlayerCommand(context.Context) (ports.PlayerCommand, error) {
	s.reads++
	if len(s.commands) == 0 {
		return ports.PlayerCommand{}, ports.ErrInputClosed
	}
	cmd := s.commands[0]
	s.commands = s.commands[1:]
	return cmd, nil
}

func (s *scriptedSource) NextBroadcast(context.Context) (ports.Broadcast, error) {
	s.reads++
	if len(s.broadcasts) == 0 {
		return ports.Broadcast{}, ports.ErrInputClosed
	}
	b := s.broadcasts[0]
	s.broadcasts = s.broadcasts[1:]
	return b, nil
}

type captureRenderer struct {
	frames    []arena.Frame
	announced []string
}

func (r *captureRenderer) Render(_ context.Context, f arena.Frame) error {
	r.frames = append(r.frames, f)
	return nil
}

func (r *captureRenderer) Announce(_ context.Context, msg string) error {
	r.announced = append(r.announced, msg)
	return nil
}

type journalStub struct {
	records []ports.TurnRecord
	err     error
}

func (j *journalStub) Append(_ context.Context, rec ports.TurnRecord) error {
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, rec)
	return nil
}

func (j *journalStub) List(_ context.Context, limit int) ([]ports.TurnRecord, error) {
	if len(j.records) == 0 {
		return nil, ports.ErrNotFound
	}
	return j.records, nil
}

var (
	_ ports.CommandSource = (*scriptedSource)(nil)
	_ ports.Renderer      = (*captureRenderer)(nil)
	_ ports.TurnJournal   = (*journalStub)(nil)
)

func stand() ports.PlayerCommand { return ports.PlayerCommand{Kind: ports.CommandStand} }
func move(d arena.Direction) ports.PlayerCommand {
	return ports.PlayerCommand{Kind: ports.CommandMove, Dir: d}
}

// newArena builds a one-health arena so a single blocked forced move destroys a cyborg.
func newArena(t *testing.T, rows, cols int, rng arena.Random) *arena.Arena {
	t.Helper()
	rules := arena.DefaultRules()
	rules.InitialHealth = 1
	a, err := arena.NewArena(rows, cols, rules, rng)
	if err != nil {
		t.Fatalf("NewArena(%d,%d): %v", rows, cols, err)
	}
	return a
}

func mustPlace(t *testing.T, ok bool, what string) {
	t.Helper()
	if !ok {
		t.Fatalf("place %s rejected", what)
	}
}

func seq(values ...int) *random.Sequence { return random.NewSequence(values...) }
