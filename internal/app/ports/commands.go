package ports

import (
	"context"
	"fmt"

	"cyborgarena/internal/domain/arena"
)

type PlayerCommandKind string

const (
	CommandAuto  PlayerCommandKind = "auto"
	CommandStand PlayerCommandKind = "stand"
	CommandMove  PlayerCommandKind = "move"
)

type PlayerCommand struct {
	Kind PlayerCommandKind
	Dir  arena.Direction
}

func (c PlayerCommand) String() string {
	if c.Kind == CommandMove {
		return fmt.Sprintf("%s %s", c.Kind, c.Dir)
	}
	return string(c.Kind)
}

type Broadcast struct {
	Channel int
	Dir     arena.Direction
}

func (b Broadcast) String() string {
	return fmt.Sprintf("channel %d %s", b.Channel, b.Dir)
}

// CommandSource blocks until the next well-formed command is available.
// Malformed input is the source's problem; it re-prompts rather than
// returning it.
type CommandSource interface {
	NextPlayerCommand(ctx context.Context) (PlayerCommand, error)
	NextBroadcast(ctx context.Context) (Broadcast, error)
}

type Renderer interface {
	Render(ctx context.Context, frame arena.Frame) error
	Announce(ctx context.Context, msg string) error
}
