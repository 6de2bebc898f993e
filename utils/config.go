package utils

import (
	"encoding/json"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
)

const (
	ModeClassic = "classic"
	ModePvP     = "pvp"
)

var (
	ErrInvalidDimensions = errors.New("columns and rows must be positive")
	ErrInvalidSeeds      = errors.New("seeds per player out of range")
	ErrInvalidInterval   = errors.New("step intervals must satisfy 0 < min <= max")
	ErrInvalidDensity    = errors.New("density must be within [0, 1]")
	ErrInvalidSpeed      = errors.New("initial speed must be within [0, 1]")
	ErrInvalidPlayers    = errors.New("exactly two players are required")
	ErrInvalidMode       = errors.New("unknown mode")
)

const (
	minSeedsPerPlayer = 1
	maxSeedsPerPlayer = 100
)

// PlayerConfig names a seat and the color it is drawn with
type PlayerConfig struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Config holds the configuration for the game
type Config struct {
	Columns         int            `json:"columns"`
	Rows            int            `json:"rows"`
	Mode            string         `json:"mode"`
	SeedsPerPlayer  int            `json:"seeds_per_player"`
	TokenBudgets    []int          `json:"token_budgets"`
	MinStepInterval time.Duration  `json:"min_step_interval"`
	MaxStepInterval time.Duration  `json:"max_step_interval"`
	InitialSpeed    float64        `json:"initial_speed"`
	RandomDensity   float64        `json:"random_density"`
	UseMemoryPool   bool           `json:"use_memory_pool"`
	UseBoundedGrid  bool           `json:"use_bounded_grid"`
	MaxGenerations  int            `json:"max_generations"`
	FrameRate       time.Duration  `json:"frame_rate"`
	Players         []PlayerConfig `json:"players"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Columns:         20,
		Rows:            20,
		Mode:            ModePvP,
		SeedsPerPlayer:  10,
		TokenBudgets:    []int{5, 10, 20},
		MinStepInterval: 50 * time.Millisecond,
		MaxStepInterval: 600 * time.Millisecond,
		InitialSpeed:    0.5,
		RandomDensity:   0.25,
		UseMemoryPool:   true,
		UseBoundedGrid:  true, // Enable active region optimization
		MaxGenerations:  1000,
		FrameRate:       50 * time.Millisecond,
		Players: []PlayerConfig{
			{Name: "BLUE", Color: "#408cff"},
			{Name: "RED", Color: "#ff6666"},
		},
	}
}

// LoadConfig loads configuration from JSON file, filling unset fields with defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for values the match cannot run with
func (c Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Validate] got %dx%d", c.Columns, c.Rows)
	}
	if c.Mode != ModeClassic && c.Mode != ModePvP {
		return errors.Wrapf(ErrInvalidMode, "[Validate] got %q", c.Mode)
	}
	if c.SeedsPerPlayer < minSeedsPerPlayer || c.SeedsPerPlayer > maxSeedsPerPlayer {
		return errors.Wrapf(ErrInvalidSeeds, "[Validate] got %d", c.SeedsPerPlayer)
	}
	for _, b := range c.TokenBudgets {
		if b < minSeedsPerPlayer || b > maxSeedsPerPlayer {
			return errors.Wrapf(ErrInvalidSeeds, "[Validate] token budget %d", b)
		}
	}
	if c.MinStepInterval <= 0 || c.MinStepInterval > c.MaxStepInterval {
		return errors.Wrapf(ErrInvalidInterval, "[Validate] got min=%v max=%v", c.MinStepInterval, c.MaxStepInterval)
	}
	if !inUnitRange(c.RandomDensity) {
		return errors.Wrapf(ErrInvalidDensity, "[Validate] random density %v", c.RandomDensity)
	}
	if !inUnitRange(c.InitialSpeed) {
		return errors.Wrapf(ErrInvalidSpeed, "[Validate] got %v", c.InitialSpeed)
	}
	if len(c.Players) != 2 {
		return errors.Wrapf(ErrInvalidPlayers, "[Validate] got %d", len(c.Players))
	}
	return nil
}

// inUnitRange is false for NaN as well as for values outside [0,1]
func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// AllowsBudget reports whether n is one of the configured token budgets
func (c Config) AllowsBudget(n int) bool {
	return slices.Contains(c.TokenBudgets, n)
}
