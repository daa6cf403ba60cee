package sand

import (
	"strconv"
	"strings"

	"mad-sand/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				{Key: "scene", Label: "Scene", Type: core.ParamTypeString, Value: w.cfg.Scene},
			},
		},
		{
			Name: "Cadence",
			Params: []core.Parameter{
				intParam("resync_every", "Resync every", params.ResyncEvery),
				intParam("stasis_multiplier", "Stasis multiplier", params.StasisMultiplier),
				intParam("acid_slowness", "Acid slowness", params.AcidSlowness),
			},
		},
		{
			Name: "Granular",
			Params: []core.Parameter{
				floatParam("sand_friction", "Sand friction", params.SandFriction),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("fire_lifetime", "Fire lifetime", params.FireLifetime),
				intParam("fire_fuel_gain", "Fire fuel gain", params.FireFuelGain),
				intParam("burnt_fire_lifetime", "Burnt wood fire lifetime", params.BurntFireLifetime),
				floatParam("fire_cling_chance", "Fire cling chance", params.FireClingChance),
				intParam("wood_burn_resistance", "Wood burn resistance", params.WoodBurnResistance),
			},
		},
		{
			Name: "Smoke",
			Params: []core.Parameter{
				intParam("smoke_lifetime_min", "Smoke lifetime min", params.SmokeLifetimeMin),
				intParam("smoke_lifetime_max", "Smoke lifetime max", params.SmokeLifetimeMax),
			},
		},
		{
			Name: "Eraser",
			Params: []core.Parameter{
				{
					Key:         "eraser_exempt",
					Label:       "Eraser exempt",
					Type:        core.ParamTypeString,
					Value:       strings.Join(params.EraserExempt, ","),
					Description: "kinds an eraser cell never removes",
				},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "sand_friction", Label: "Sand friction", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "fire_cling_chance", Label: "Fire cling", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "fire_lifetime", Label: "Fire lifetime", Type: core.ParamTypeInt, Step: 10, Min: 1, Max: 2000, HasMin: true, HasMax: true},
	{Key: "wood_burn_resistance", Label: "Wood resistance", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 500, HasMin: true, HasMax: true},
	{Key: "acid_slowness", Label: "Acid slowness", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 30, HasMin: true, HasMax: true},
	{Key: "resync_every", Label: "Resync every", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 500, HasMin: true, HasMax: true},
}

// ParameterControls lists the tunables the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(parameterControls))
	copy(out, parameterControls)
	return out
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range parameterControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer tunable, clamped to its control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	p := &w.cfg.Params
	switch key {
	case "fire_lifetime":
		p.FireLifetime = v
	case "wood_burn_resistance":
		p.WoodBurnResistance = v
	case "acid_slowness":
		p.AcidSlowness = v
		w.reg.Each(KindAcid, func(c Cell) bool {
			c.(*Acid).slowness = v
			return true
		})
	case "resync_every":
		p.ResyncEvery = v
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamped to its control
// bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	v := ctrl.Clamp(value)
	switch key {
	case "sand_friction":
		w.cfg.Params.SandFriction = v
		w.reg.Each(KindSand, func(c Cell) bool {
			c.(*Sand).friction = v
			return true
		})
	case "fire_cling_chance":
		w.cfg.Params.FireClingChance = v
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
