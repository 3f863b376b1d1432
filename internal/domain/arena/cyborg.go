package arena

// Cyborg is a hostile agent. It belongs to exactly one arena and listens on a
// single broadcast channel.
type Cyborg struct {
	arena   *Arena
	pos     Position
	channel int
	health  int
}

func NewCyborg(a *Arena, p Position, channel int) (*Cyborg, error) {
	if a == nil {
		return nil, ErrNoArena
	}
	if !a.grid.InBounds(p) {
		return nil, &PositionError{Op: "NewCyborg", Pos: p}
	}
	if channel < 1 || channel > a.rules.Channels {
		return nil, ErrInvalidChannel
	}
	return &Cyborg{arena: a, pos: p, channel: channel, health: a.rules.InitialHealth}, nil
}

func (c Cyborg) Position() Position { return c.pos }
func (c Cyborg) Channel() int       { return c.channel }
func (c Cyborg) Health() int        { return c.health }

func (c Cyborg) IsDead() bool {
	return c.health <= 0
}

// ForceMove obeys a broadcast. A blocked move costs one point of health;
// an invalid direction is ignored.
func (c *Cyborg) ForceMove(d Direction) {
	if !d.Valid() {
		return
	}
	next, ok := c.arena.grid.attemptMove(c.pos, d)
	if !ok {
		c.health--
		return
	}
	c.pos = next
}

// Move wanders one step in a random direction. A blocked move is free.
func (c *Cyborg) Move() {
	if c.IsDead() {
		return
	}
	d := Direction(c.arena.rng.IntRange(0, NumDirections-1))
	if next, ok := c.arena.grid.attemptMove(c.pos, d); ok {
		c.pos = next
	}
}
