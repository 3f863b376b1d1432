package console

import (
	"errors"
	"unicode"

	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/domain/arena"

	"github.com/leonelquinteros/gotext"
)

var (
	ErrBadPlayerMove = errors.New("bad player move")
	ErrBadBroadcast  = errors.New("bad broadcast")
	ErrBadChannel    = errors.New("bad channel")
	ErrBadDirection  = errors.New("bad broadcast direction")
)

// InputError carries the message shown before re-prompting.
type InputError struct {
	Kind error
	Msg  string
}

func (e *InputError) Error() string { return e.Msg }
func (e *InputError) Unwrap() error { return e.Kind }

// ParsePlayerCommand reads one player line: empty for the recommended move,
// x to stand, or one of n/e/s/w. Case is ignored.
func ParsePlayerCommand(line string) (ports.PlayerCommand, error) {
	runes := []rune(line)
	switch len(runes) {
	case 0:
		return ports.PlayerCommand{Kind: ports.CommandAuto}, nil
	case 1:
		ch := unicode.ToLower(runes[0])
		if ch == 'x' {
			return ports.PlayerCommand{Kind: ports.CommandStand}, nil
		}
		if d, ok := arena.ParseDirection(ch); ok {
			return ports.PlayerCommand{Kind: ports.CommandMove, Dir: d}, nil
		}
	}
	return ports.PlayerCommand{}, &InputError{
		Kind: ErrBadPlayerMove,
		Msg:  gotext.Get("Player move must be nothing, or 1 character n/e/s/w/x."),
	}
}

// ParseBroadcast reads a two character broadcast such as "2n".
func ParseBroadcast(line string, channels int) (ports.Broadcast, error) {
	runes := []rune(line)
	if len(runes) != 2 {
		return ports.Broadcast{}, &InputError{
			Kind: ErrBadBroadcast,
			Msg:  gotext.Get("You must specify a channel followed by a direction."),
		}
	}
	if runes[0] < '1' || runes[0] > rune('0'+channels) {
		return ports.Broadcast{}, &InputError{
			Kind: ErrBadChannel,
			Msg:  gotext.Get("Channel must be a digit in the range 1 through %d.", channels),
		}
	}
	d, ok := arena.ParseDirection(runes[1])
	if !ok {
		return ports.Broadcast{}, &InputError{
			Kind: ErrBadDirection,
			Msg:  gotext.Get("Direction must be n, e, s, or w."),
		}
	}
	return ports.Broadcast{Channel: int(runes[0] - '0'), Dir: d}, nil
}
