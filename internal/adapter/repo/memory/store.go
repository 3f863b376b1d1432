package memory

import "sync"

// Store keeps the journal of a single session. Frames are held encoded so a
// stored turn never aliases live arena state.
type Store struct {
	mu      sync.RWMutex
	journal []journalEntry
}

type journalEntry struct {
	Round   int
	Phase   string
	Command string
	Frame   []byte
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.journal)
}
