package status

import (
	"context"
	"errors"
	"testing"

	"cyborgarena/internal/adapter/metrics/inmemory"
	"cyborgarena/internal/adapter/random"
	"cyborgarena/internal/app/game"
	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"
)

func TestUseCase_SummarisesFinishedSession(t *testing.T) {
	rules := arena.DefaultRules()
	rules.InitialHealth = 1
	a, err := arena.NewArena(1, 3, rules, random.NewSequence(0))
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	if !a.AddPlayer(1, 1) || !a.AddCyborg(1, 3, 1) {
		t.Fatalf("setup failed")
	}
	metrics := inmemory.NewRecorder()
	s := game.NewSessionWithArena(context.Background(), a, game.Deps{Metrics: metrics})
	if _, err := s.TakePlayerTurn(context.Background(), ports.PlayerCommand{Kind: ports.CommandStand}); err != nil {
		t.Fatalf("TakePlayerTurn: %v", err)
	}
	if _, err := s.TakeCyborgsTurn(context.Background(), ports.Broadcast{Channel: 1, Dir: arena.East}); err != nil {
		t.Fatalf("TakeCyborgsTurn: %v", err)
	}

	resp, err := UseCase{Session: s, Metrics: metrics}.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.State != game.StateWon || resp.Rounds != 1 || resp.Remaining != 0 || resp.PlayerDead {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Metrics.CyborgsDestroyed != 1 {
		t.Fatalf("expected 1 destroyed, got %d", resp.Metrics.CyborgsDestroyed)
	}
	if got, want := resp.Summary(), "state=won rounds=1 remaining=0 responsive=1 destroyed=1"; got != want {
		t.Fatalf("summary got=%q want=%q", got, want)
	}
}

func TestUseCase_WorksWithoutMetrics(t *testing.T) {
	a, err := arena.NewArena(2, 2, arena.DefaultRules(), random.NewSequence())
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	s := game.NewSessionWithArena(context.Background(), a, game.Deps{})

	resp, err := UseCase{Session: s}.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.State != game.StateNoPlayer || resp.PlayerDead {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestUseCase_RejectsMissingSession(t *testing.T) {
	if _, err := (UseCase{}).Execute(context.Background()); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
