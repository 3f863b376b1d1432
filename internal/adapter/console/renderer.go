package console

import (
	"context"
	"fmt"
	"io"

	"cyborgarena/internal/domain/arena"
)

const ansiClear = "\x1B[2J\x1B[H"

// Renderer clears the terminal and prints each frame below the grid.
// Dumb terminals get a blank line instead of the escape sequence.
type Renderer struct {
	out   io.Writer
	clear string
}

func NewRenderer(out io.Writer, term string) *Renderer {
	clear := ansiClear
	if term == "" || term == "dumb" {
		clear = "\n"
	}
	return &Renderer{out: out, clear: clear}
}

func (r *Renderer) Render(_ context.Context, frame arena.Frame) error {
	frame.Message = localize(frame.Message)
	_, err := fmt.Fprint(r.out, r.clear, frame.String())
	return err
}

func (r *Renderer) Announce(_ context.Context, msg string) error {
	_, err := fmt.Fprintln(r.out, localize(msg))
	return err
}
