package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	// Set holds key=value overrides handed to the sim factory.
	Set kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "territory", Scale: 12, TPS: 600, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// SimArgs returns the overrides as a factory configuration map.
func (c *Config) SimArgs() map[string]string {
	if len(c.Set) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		key, value, _ := strings.Cut(kv, "=")
		out[key] = value
	}
	return out
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}
