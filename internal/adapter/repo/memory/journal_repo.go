package memory

import (
	"context"
	"fmt"

	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"

	"github.com/vmihailenco/msgpack/v5"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(_ context.Context, record ports.TurnRecord) error {
	frame, err := msgpack.Marshal(&record.Frame)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.journal = append(r.store.journal, journalEntry{
		Round:   record.Round,
		Phase:   string(record.Phase),
		Command: record.Command,
		Frame:   frame,
	})
	return nil
}

// List returns the newest limit records in append order. A non-positive
// limit returns everything.
func (r JournalRepo) List(_ context.Context, limit int) ([]ports.TurnRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := r.store.journal
	if len(entries) == 0 {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]ports.TurnRecord, 0, len(entries))
	for _, e := range entries {
		var frame arena.Frame
		if err := msgpack.Unmarshal(e.Frame, &frame); err != nil {
			return nil, fmt.Errorf("decode frame round %d: %w", e.Round, err)
		}
		out = append(out, ports.TurnRecord{
			Round:   e.Round,
			Phase:   ports.TurnPhase(e.Phase),
			Command: e.Command,
			Frame:   frame,
		})
	}
	return out, nil
}
