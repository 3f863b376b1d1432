package arena

import "github.com/zyedidia/generic/mapset"

// WallGrid is the static obstacle mask of an arena. Walls are only ever added.
type WallGrid struct {
	rows  int
	cols  int
	walls mapset.Set[Position]
}

func NewWallGrid(rows, cols int) (WallGrid, error) {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return WallGrid{}, ErrInvalidArenaSize
	}
	return WallGrid{rows: rows, cols: cols, walls: mapset.New[Position]()}, nil
}

func (g WallGrid) Rows() int { return g.rows }
func (g WallGrid) Cols() int { return g.cols }

func (g WallGrid) InBounds(p Position) bool {
	return p.Row >= 1 && p.Row <= g.rows && p.Col >= 1 && p.Col <= g.cols
}

func (g WallGrid) checkPos(op string, p Position) error {
	if !g.InBounds(p) {
		return &PositionError{Op: op, Pos: p}
	}
	return nil
}

func (g WallGrid) HasWallAt(p Position) (bool, error) {
	if err := g.checkPos("WallGrid.HasWallAt", p); err != nil {
		return false, err
	}
	return g.walls.Has(p), nil
}

func (g WallGrid) PlaceWallAt(p Position) error {
	if err := g.checkPos("WallGrid.PlaceWallAt", p); err != nil {
		return err
	}
	g.walls.Put(p)
	return nil
}

func (g WallGrid) WallCount() int {
	return g.walls.Size()
}

// blocked reports whether p is outside the grid or holds a wall.
func (g WallGrid) blocked(p Position) bool {
	return !g.InBounds(p) || g.walls.Has(p)
}

// attemptMove returns the destination of a step from p, or false when the
// step would leave the grid or enter a wall.
func (g WallGrid) attemptMove(p Position, d Direction) (Position, bool) {
	if !d.Valid() {
		return p, false
	}
	next := p.Step(d)
	if g.blocked(next) {
		return p, false
	}
	return next, true
}
