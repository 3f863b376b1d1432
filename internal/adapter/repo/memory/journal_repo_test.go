package memory

import (
	"context"
	"errors"
	"testing"

	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"
)

var _ ports.TurnJournal = JournalRepo{}

func TestJournalRepo_ListEmpty(t *testing.T) {
	repo := NewJournalRepo(NewStore())
	if _, err := repo.List(context.Background(), 0); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJournalRepo_FramesAreDetachedFromCaller(t *testing.T) {
	store := NewStore()
	repo := NewJournalRepo(store)
	ctx := context.Background()

	frame := arena.Frame{Grid: []string{"@.", ".1"}, Message: "Player stands.", Remaining: 1, Player: arena.PlayerAlive}
	if err := repo.Append(ctx, ports.TurnRecord{Round: 1, Phase: ports.PhasePlayer, Command: "stand", Frame: frame}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	frame.Grid[0] = "X."

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || store.Len() != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
	rec := got[0]
	if rec.Round != 1 || rec.Phase != ports.PhasePlayer || rec.Command != "stand" {
		t.Fatalf("unexpected record header %+v", rec)
	}
	if rec.Frame.Grid[0] != "@." || rec.Frame.Grid[1] != ".1" {
		t.Fatalf("stored frame aliased caller slice: %v", rec.Frame.Grid)
	}
	if rec.Frame.Remaining != 1 || rec.Frame.Player != arena.PlayerAlive || rec.Frame.Message != "Player stands." {
		t.Fatalf("frame fields lost: %+v", rec.Frame)
	}
}

func TestJournalRepo_ListLimitKeepsNewest(t *testing.T) {
	repo := NewJournalRepo(NewStore())
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, ports.TurnRecord{Round: i, Phase: ports.PhaseCyborgs}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Round != 3 || got[1].Round != 4 {
		t.Fatalf("unexpected tail: %+v", got)
	}
}
