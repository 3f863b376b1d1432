package game

import (
	"fmt"

	"cyborgarena/internal/domain/arena"
)

// maxPlacementAttempts caps each rejection-sampling loop below.
const maxPlacementAttempts = 1_000_000

type Layout struct {
	Rows        int
	Cols        int
	Cyborgs     int
	WallDensity float64
}

func (l Layout) Validate() error {
	if l.Cyborgs < 0 || l.Cyborgs > arena.MaxCyborgs {
		return fmt.Errorf("%w: %d", ErrInvalidCyborgCount, l.Cyborgs)
	}
	if l.Rows*l.Cols-l.Cyborgs-1 < 0 {
		return fmt.Errorf("%w: %d by %d arena with %d cyborgs", ErrArenaTooSmall, l.Rows, l.Cols, l.Cyborgs)
	}
	if l.WallDensity < 0 || l.WallDensity > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidWallDensity, l.WallDensity)
	}
	return nil
}

// emptyCells is the number of cells left once the player and every cyborg
// have one to themselves; walls take a WallDensity share of them.
func (l Layout) emptyCells() int {
	return l.Rows*l.Cols - l.Cyborgs - 1
}

func (l Layout) wallCount() int {
	return int(l.WallDensity * float64(l.emptyCells()))
}

// populate scatters walls, then the player, then the cyborgs over a fresh arena.
func populate(a *arena.Arena, l Layout, rng arena.Random) error {
	randomCell := func() (int, int) {
		return rng.IntRange(1, a.Rows()), rng.IntRange(1, a.Cols())
	}

	for left, tries := l.wallCount(), 0; left > 0; tries++ {
		if tries >= maxPlacementAttempts {
			return fmt.Errorf("%w: walls", ErrLayoutExhausted)
		}
		r, c := randomCell()
		wall, err := a.HasWallAt(r, c)
		if err != nil {
			return err
		}
		if wall {
			continue
		}
		if err := a.PlaceWallAt(r, c); err != nil {
			return err
		}
		left--
	}

	var pr, pc int
	for tries := 0; ; tries++ {
		if tries >= maxPlacementAttempts {
			return fmt.Errorf("%w: player", ErrLayoutExhausted)
		}
		pr, pc = randomCell()
		wall, err := a.HasWallAt(pr, pc)
		if err != nil {
			return err
		}
		if !wall {
			break
		}
	}
	if !a.AddPlayer(pr, pc) {
		return fmt.Errorf("%w: player rejected at (%d,%d)", ErrLayoutExhausted, pr, pc)
	}

	channels := a.Rules().Channels
	for left, tries := l.Cyborgs, 0; left > 0; tries++ {
		if tries >= maxPlacementAttempts {
			return fmt.Errorf("%w: cyborgs", ErrLayoutExhausted)
		}
		r, c := randomCell()
		wall, err := a.HasWallAt(r, c)
		if err != nil {
			return err
		}
		if wall || (r == pr && c == pc) {
			continue
		}
		if !a.AddCyborg(r, c, rng.IntRange(1, channels)) {
			return fmt.Errorf("%w: cyborg rejected at (%d,%d)", ErrLayoutExhausted, r, c)
		}
		left--
	}
	return nil
}
