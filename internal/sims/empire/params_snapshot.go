package empire

import (
	"strconv"

	"territory/internal/core"
)

// Parameters exposes the current tunables for the HUD and summary panels.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", w.cfg.Width),
				intParam("height", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("empires", "Empires", len(w.empires)),
				intParam("max_troops", "Max troops", int(params.MaxTroops)),
			},
		},
		{
			Name: "Decay",
			Params: []core.Parameter{
				intParam("decay_period_min", "Decay period min", params.DecayPeriodMin),
				intParam("decay_period_max", "Decay period max", params.DecayPeriodMax),
				floatParam("decay_scale_min", "Decay scale min", params.DecayScaleMin),
				floatParam("decay_scale_max", "Decay scale max", params.DecayScaleMax),
			},
		},
		{
			Name: "Conquest",
			Params: []core.Parameter{
				floatParam("conquest_mul_min", "Conquest multiplier min", params.ConquestMulMin),
				floatParam("conquest_mul_max", "Conquest multiplier max", params.ConquestMulMax),
				intParam("friendly_support", "Friendly support", params.FriendlySupport),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				intParam("workers", "Workers", params.Workers),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 32, Min: 32, Max: 1024, HasMin: true, HasMax: true},
		{Key: "height", Label: "Height", Type: core.ParamTypeInt, Step: 32, Min: 32, Max: 1024, HasMin: true, HasMax: true},
		{Key: "decay_period_min", Label: "Decay period min", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "decay_period_max", Label: "Decay period max", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "decay_scale_min", Label: "Decay scale min", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "decay_scale_max", Label: "Decay scale max", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "conquest_mul_min", Label: "Conquest mul min", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.5, Max: 1.5, HasMin: true, HasMax: true},
		{Key: "conquest_mul_max", Label: "Conquest mul max", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.5, Max: 1.5, HasMin: true, HasMax: true},
		{Key: "friendly_support", Label: "Friendly support", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "max_troops", Label: "Max troops", Type: core.ParamTypeInt, Step: 1024, Min: 255, Max: 65535, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, reporting whether the key was
// recognized. Values are clamped to keep min/max pairs ordered.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	switch key {
	case "width":
		if value < 1 {
			return false
		}
		return w.Resize(value, w.bounds.H) == nil
	case "height":
		if value < 1 {
			return false
		}
		return w.Resize(w.bounds.W, value) == nil
	case "decay_period_min":
		if value < 1 {
			value = 1
		}
		p.DecayPeriodMin = value
		if p.DecayPeriodMax < value {
			p.DecayPeriodMax = value
		}
	case "decay_period_max":
		if value < p.DecayPeriodMin {
			value = p.DecayPeriodMin
		}
		p.DecayPeriodMax = value
	case "friendly_support":
		if value < 0 {
			value = 0
		}
		if value > 8 {
			value = 8
		}
		p.FriendlySupport = value
	case "max_troops":
		if value < 1 {
			value = 1
		}
		if value > 65535 {
			value = 65535
		}
		p.MaxTroops = uint16(value)
		w.clampAllTroops()
	case "workers":
		if value < 0 {
			value = 0
		}
		p.Workers = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, reporting whether the key was
// recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.cfg.Params
	if value < 0 {
		value = 0
	}
	switch key {
	case "decay_scale_min":
		p.DecayScaleMin = value
		if p.DecayScaleMax < value {
			p.DecayScaleMax = value
		}
	case "decay_scale_max":
		if value < p.DecayScaleMin {
			value = p.DecayScaleMin
		}
		p.DecayScaleMax = value
	case "conquest_mul_min":
		p.ConquestMulMin = value
		if p.ConquestMulMax < value {
			p.ConquestMulMax = value
		}
	case "conquest_mul_max":
		if value < p.ConquestMulMin {
			value = p.ConquestMulMin
		}
		p.ConquestMulMax = value
	default:
		return false
	}
	return true
}

// clampAllTroops re-establishes the troop ceiling after MaxTroops shrinks.
func (w *World) clampAllTroops() {
	max := w.cfg.Params.MaxTroops
	for i := range w.cur {
		if w.cur[i].Troops > max {
			w.cur[i].Troops = max
		}
	}
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
