package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cyborgarena/internal/domain/arena"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	EnvConfigPath  = "CYBORGS_CONFIG"
	EnvRows        = "CYBORGS_ROWS"
	EnvCols        = "CYBORGS_COLS"
	EnvCount       = "CYBORGS_COUNT"
	EnvChannels    = "CYBORGS_CHANNELS"
	EnvHealth      = "CYBORGS_HEALTH"
	EnvWallDensity = "CYBORGS_WALL_DENSITY"
	EnvSeed        = "CYBORGS_SEED"
)

// Config holds the startup parameters of one session.
type Config struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Cyborgs     int     `yaml:"cyborgs"`
	Channels    int     `yaml:"channels"`
	Health      int     `yaml:"health"`
	WallDensity float64 `yaml:"wall_density"`
	Seed        int64   `yaml:"seed"`
	LocaleDir   string  `yaml:"locale_dir"`
	Language    string  `yaml:"language"`
}

func Default() Config {
	return Config{
		Rows:        3,
		Cols:        5,
		Cyborgs:     4,
		Channels:    arena.DefaultChannels,
		Health:      arena.DefaultInitialHealth,
		WallDensity: arena.DefaultWallDensity,
		Language:    "en_US",
	}
}

// Load returns the defaults overlaid with the YAML file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if err := loadYAML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// ApplyEnv overrides fields from the environment. Unset or unparsable
// variables leave the current value untouched.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	c.Rows = intEnv(getenv, EnvRows, c.Rows)
	c.Cols = intEnv(getenv, EnvCols, c.Cols)
	c.Cyborgs = intEnv(getenv, EnvCount, c.Cyborgs)
	c.Channels = intEnv(getenv, EnvChannels, c.Channels)
	c.Health = intEnv(getenv, EnvHealth, c.Health)
	c.WallDensity = floatEnv(getenv, EnvWallDensity, c.WallDensity)
	c.Seed = int64(intEnv(getenv, EnvSeed, int(c.Seed)))
}

func (c Config) Validate() error {
	if c.Rows < 1 || c.Rows > arena.MaxRows {
		return fmt.Errorf("%w: rows %d outside 1..%d", ErrInvalidConfig, c.Rows, arena.MaxRows)
	}
	if c.Cols < 1 || c.Cols > arena.MaxCols {
		return fmt.Errorf("%w: cols %d outside 1..%d", ErrInvalidConfig, c.Cols, arena.MaxCols)
	}
	if c.Cyborgs < 0 || c.Cyborgs > arena.MaxCyborgs {
		return fmt.Errorf("%w: cyborgs %d outside 0..%d", ErrInvalidConfig, c.Cyborgs, arena.MaxCyborgs)
	}
	if c.Channels < 1 || c.Channels > arena.MaxChannels {
		return fmt.Errorf("%w: channels %d outside 1..%d", ErrInvalidConfig, c.Channels, arena.MaxChannels)
	}
	if c.Health <= 0 {
		return fmt.Errorf("%w: health %d must be positive", ErrInvalidConfig, c.Health)
	}
	if c.WallDensity < 0 || c.WallDensity > 1 {
		return fmt.Errorf("%w: wall density %v outside 0..1", ErrInvalidConfig, c.WallDensity)
	}
	return nil
}

func (c Config) Rules() arena.Rules {
	return arena.Rules{
		Channels:      c.Channels,
		InitialHealth: c.Health,
		MaxCyborgs:    arena.MaxCyborgs,
	}
}

func intEnv(getenv func(string) string, key string, fallback int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(getenv func(string) string, key string, fallback float64) float64 {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
