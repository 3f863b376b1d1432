package arena

const (
	MaxRows    = 20
	MaxCols    = 20
	MaxCyborgs = 100

	// MaxChannels is bounded by the single digit used to draw a cyborg.
	MaxChannels = 9

	DefaultChannels      = 3
	DefaultInitialHealth = 3
	DefaultWallDensity   = 0.11
)

type Rules struct {
	Channels      int
	InitialHealth int
	MaxCyborgs    int
}

func DefaultRules() Rules {
	return Rules{
		Channels:      DefaultChannels,
		InitialHealth: DefaultInitialHealth,
		MaxCyborgs:    MaxCyborgs,
	}
}

func (r Rules) Validate() error {
	if r.Channels < 1 || r.Channels > MaxChannels {
		return ErrInvalidRules
	}
	if r.InitialHealth <= 0 {
		return ErrInvalidRules
	}
	if r.MaxCyborgs < 0 || r.MaxCyborgs > MaxCyborgs {
		return ErrInvalidRules
	}
	return nil
}
