package sand

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scene names accepted by Config.Scene.
const (
	SceneEmpty = "empty"
	SceneDunes = "dunes"
)

// Params holds the tunable rates, lifetimes and cadences of the sandbox.
type Params struct {
	ResyncEvery      int `yaml:"resync_every"`
	StasisMultiplier int `yaml:"stasis_multiplier"`

	SandFriction float64 `yaml:"sand_friction"`

	FireLifetime      int     `yaml:"fire_lifetime"`
	FireFuelGain      int     `yaml:"fire_fuel_gain"`
	BurntFireLifetime int     `yaml:"burnt_fire_lifetime"`
	FireClingChance   float64 `yaml:"fire_cling_chance"`

	SmokeLifetimeMin int `yaml:"smoke_lifetime_min"`
	SmokeLifetimeMax int `yaml:"smoke_lifetime_max"`

	WoodBurnResistance int `yaml:"wood_burn_resistance"`
	AcidSlowness       int `yaml:"acid_slowness"`

	// EraserExempt names the kinds an eraser cell leaves alone. The eraser
	// kind itself is always exempt.
	EraserExempt []string `yaml:"eraser_exempt"`
}

// Config controls the sandbox dimensions and rules.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
	Scene  string `yaml:"scene"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  108,
		Height: 72,
		Seed:   1337,
		Scene:  SceneEmpty,
		Params: Params{
			ResyncEvery:        20,
			StasisMultiplier:   10,
			SandFriction:       0.1,
			FireLifetime:       200,
			FireFuelGain:       1,
			BurntFireLifetime:  300,
			FireClingChance:    0.6,
			SmokeLifetimeMin:   60,
			SmokeLifetimeMax:   120,
			WoodBurnResistance: 25,
			AcidSlowness:       2,
			EraserExempt:       []string{"eraser", "solid"},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	applyMap(&c, cfg)
	c.normalize()
	return c
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := parseKinds(c.Params.EraserExempt); err != nil {
		return c, fmt.Errorf("%s: eraser_exempt: %w", path, err)
	}
	c.normalize()
	return c, nil
}

// ConfigFrom loads path when it is non-empty and applies overrides on top.
func ConfigFrom(path string, overrides map[string]string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	applyMap(&c, overrides)
	c.normalize()
	return c, nil
}

func applyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	setInt := func(key string, dst *int, min int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}

	setInt("w", &c.Width, 1)
	setInt("h", &c.Height, 1)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}

	p := &c.Params
	setInt("resync_every", &p.ResyncEvery, 0)
	setInt("stasis_multiplier", &p.StasisMultiplier, 1)
	setFloat("sand_friction", &p.SandFriction)
	setInt("fire_lifetime", &p.FireLifetime, 1)
	setInt("fire_fuel_gain", &p.FireFuelGain, 0)
	setInt("burnt_fire_lifetime", &p.BurntFireLifetime, 1)
	setFloat("fire_cling_chance", &p.FireClingChance)
	setInt("smoke_lifetime_min", &p.SmokeLifetimeMin, 1)
	setInt("smoke_lifetime_max", &p.SmokeLifetimeMax, 1)
	setInt("wood_burn_resistance", &p.WoodBurnResistance, 0)
	setInt("acid_slowness", &p.AcidSlowness, 0)
	if v, ok := cfg["eraser_exempt"]; ok {
		names := splitList(v)
		if _, err := parseKinds(names); err == nil {
			p.EraserExempt = names
		}
	}
}

func (c *Config) normalize() {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Scene == "" {
		c.Scene = SceneEmpty
	}
	p := &c.Params
	p.SandFriction = clamp01(p.SandFriction)
	p.FireClingChance = clamp01(p.FireClingChance)
	if p.ResyncEvery < 0 {
		p.ResyncEvery = 0
	}
	if p.StasisMultiplier < 1 {
		p.StasisMultiplier = 1
	}
	if p.FireLifetime < 1 {
		p.FireLifetime = 1
	}
	if p.BurntFireLifetime < 1 {
		p.BurntFireLifetime = 1
	}
	if p.SmokeLifetimeMin < 1 {
		p.SmokeLifetimeMin = 1
	}
	if p.SmokeLifetimeMax < p.SmokeLifetimeMin {
		p.SmokeLifetimeMax = p.SmokeLifetimeMin
	}
	if p.AcidSlowness < 0 {
		p.AcidSlowness = 0
	}
}

func parseKinds(names []string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
