package arena

import "unicode"

type Position struct {
	Row int `msgpack:"r"`
	Col int `msgpack:"c"`
}

func Pos(r, c int) Position {
	return Position{Row: r, Col: c}
}

type Direction int

const (
	North Direction = iota
	East
	South
	West

	NumDirections = 4
)

var directionNames = [NumDirections]string{"north", "east", "south", "west"}

func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// Step returns the neighbouring position in direction d. Bounds are not checked.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		p.Row--
	case East:
		p.Col++
	case South:
		p.Row++
	case West:
		p.Col--
	}
	return p
}

// ParseDirection decodes one of n, e, s, w (any case).
func ParseDirection(ch rune) (Direction, bool) {
	switch unicode.ToLower(ch) {
	case 'n':
		return North, true
	case 'e':
		return East, true
	case 's':
		return South, true
	case 'w':
		return West, true
	}
	return 0, false
}
