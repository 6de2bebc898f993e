package utils

import (
	"flag"

	"github.com/pkg/errors"
)

// Flags are command line overrides applied on top of the config file
type Flags struct {
	ConfigPath string
	Mode       string
	Seeds      int
	Scale      int
	TPS        int
	Seed       int64
	Verbose    bool
}

// NewFlags returns Flags populated with defaults
func NewFlags() *Flags {
	return &Flags{ConfigPath: "config.json", Scale: 24, TPS: 60}
}

// Bind attaches the flags to the provided FlagSet
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to the JSON configuration file")
	fs.StringVar(&f.Mode, "mode", f.Mode, "match mode: classic or pvp (overrides config)")
	fs.IntVar(&f.Seeds, "seeds", f.Seeds, "tokens per player (overrides config)")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixels per cell")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "random seed, 0 picks one from the clock")
	fs.BoolVar(&f.Verbose, "v", f.Verbose, "debug logging")
}

// Apply copies the set overrides into config and validates the result
func (f *Flags) Apply(config *Config) error {
	if f.Mode != "" {
		config.Mode = f.Mode
	}
	if f.Seeds > 0 {
		config.SeedsPerPlayer = f.Seeds
	}
	if err := config.Validate(); err != nil {
		return errors.Wrapf(err, "[Apply] invalid flags: mode=%+v seeds=%+v", f.Mode, f.Seeds)
	}
	return nil
}
