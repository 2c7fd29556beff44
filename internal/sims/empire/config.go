package empire

import (
	"flag"
	"strconv"
)

// Params holds the tunable conquest-rule values.
type Params struct {
	MaxTroops uint16

	DecayPeriodMin int
	DecayPeriodMax int
	DecayScaleMin  float64
	DecayScaleMax  float64

	ConquestMulMin float64
	ConquestMulMax float64

	// FriendlySupport is the number of same-owner neighbors a cell needs
	// before it can resist capture by a weaker contender.
	FriendlySupport int

	// Workers is the number of goroutines stepping the grid. Zero means
	// one per CPU.
	Workers int
}

// Config controls the empire simulation dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Boundary Boundary

	// Empires seeded with random colors on construction.
	Empires int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Seed:     1337,
		Boundary: BoundaryToroidal,
		Empires:  4,
		Params: Params{
			MaxTroops:       65535,
			DecayPeriodMin:  3,
			DecayPeriodMax:  4,
			DecayScaleMin:   0.05,
			DecayScaleMax:   0.13,
			ConquestMulMin:  0.97,
			ConquestMulMax:  1.03,
			FriendlySupport: 2,
		},
	}
}

// Bind attaches the headline configuration values to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Empires, "empires", c.Empires, "number of empires seeded at reset")
	fs.IntVar(&c.Params.Workers, "workers", c.Params.Workers, "step worker goroutines (0 = NumCPU)")
	fs.Var(&c.Boundary, "boundary", "grid edge policy: toroidal or clamped")
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["empires"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Empires = parsed
		}
	}
	if v, ok := cfg["max_troops"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 16); err == nil && parsed > 0 {
			c.Params.MaxTroops = uint16(parsed)
		}
	}
	if v, ok := cfg["decay_period_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.DecayPeriodMin = parsed
		}
	}
	if v, ok := cfg["decay_period_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.DecayPeriodMax = parsed
		}
	}
	if c.Params.DecayPeriodMax < c.Params.DecayPeriodMin {
		c.Params.DecayPeriodMax = c.Params.DecayPeriodMin
	}
	if v, ok := cfg["decay_scale_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DecayScaleMin = parsed
		}
	}
	if v, ok := cfg["decay_scale_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DecayScaleMax = parsed
		}
	}
	if c.Params.DecayScaleMax < c.Params.DecayScaleMin {
		c.Params.DecayScaleMax = c.Params.DecayScaleMin
	}
	if v, ok := cfg["conquest_mul_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ConquestMulMin = parsed
		}
	}
	if v, ok := cfg["conquest_mul_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ConquestMulMax = parsed
		}
	}
	if c.Params.ConquestMulMax < c.Params.ConquestMulMin {
		c.Params.ConquestMulMax = c.Params.ConquestMulMin
	}
	if v, ok := cfg["friendly_support"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FriendlySupport = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Workers = parsed
		}
	}
	return c
}
