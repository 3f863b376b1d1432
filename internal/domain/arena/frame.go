package arena

import (
	"fmt"
	"strings"
)

type PlayerStatus string

const (
	PlayerAbsent PlayerStatus = "absent"
	PlayerAlive  PlayerStatus = "alive"
	PlayerDead   PlayerStatus = "dead"
)

const (
	markEmpty      = '.'
	markWall       = '*'
	markPlayer     = '@'
	markDeadPlayer = 'X'
)

// Frame is a text snapshot of the arena plus the status shown under it.
type Frame struct {
	Grid      []string     `msgpack:"grid"`
	Message   string       `msgpack:"message"`
	Remaining int          `msgpack:"remaining"`
	Player    PlayerStatus `msgpack:"player"`
}

func (a *Arena) Render(msg string) Frame {
	cells := make([][]byte, a.Rows())
	for r := range cells {
		row := make([]byte, a.Cols())
		for c := range row {
			row[c] = markEmpty
			if a.grid.walls.Has(Pos(r+1, c+1)) {
				row[c] = markWall
			}
		}
		cells[r] = row
	}

	// Only one digit fits a cell; later cyborgs hide earlier ones.
	for _, cy := range a.cyborgs {
		cells[cy.pos.Row-1][cy.pos.Col-1] = byte('0' + cy.channel)
	}

	status := PlayerAbsent
	if a.player != nil {
		mark := byte(markPlayer)
		status = PlayerAlive
		if a.player.dead {
			mark = markDeadPlayer
			status = PlayerDead
		}
		cells[a.player.pos.Row-1][a.player.pos.Col-1] = mark
	}

	grid := make([]string, len(cells))
	for i, row := range cells {
		grid[i] = string(row)
	}
	return Frame{Grid: grid, Message: msg, Remaining: len(a.cyborgs), Player: status}
}

func (f Frame) String() string {
	var b strings.Builder
	for _, row := range f.Grid {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if f.Message != "" {
		b.WriteString(f.Message)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "There are %d cyborgs remaining.\n", f.Remaining)
	switch f.Player {
	case PlayerAbsent:
		b.WriteString("There is no player!\n")
	case PlayerDead:
		b.WriteString("The player is dead.\n")
	}
	return b.String()
}
