package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string

	// Zero or empty values leave the sim's own configuration alone.
	Width  int
	Height int
	Scene  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 6, TPS: 33}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the config seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with sim parameters")
	fs.IntVar(&c.Width, "w", c.Width, "grid width override")
	fs.IntVar(&c.Height, "h", c.Height, "grid height override")
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene override")
}

// Overrides converts the set flags into the key/value map sim factories take.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{}
	if c.ConfigPath != "" {
		out["config"] = c.ConfigPath
	}
	if c.Width > 0 {
		out["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		out["h"] = strconv.Itoa(c.Height)
	}
	if c.Scene != "" {
		out["scene"] = c.Scene
	}
	if c.Seed != 0 {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}
