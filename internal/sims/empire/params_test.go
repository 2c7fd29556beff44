package empire

import (
	"math"
	"testing"

	"territory/internal/core"
)

func TestSetFloatParameterKeepsRangesOrdered(t *testing.T) {
	world := NewWithConfig(testConfig(8, 8, 1))

	if !world.SetFloatParameter("decay_scale_min", 0.2) {
		t.Fatal("expected decay scale min to be adjustable")
	}
	if got := world.cfg.Params.DecayScaleMax; got < 0.2 {
		t.Fatalf("decay scale max %f fell below the new min", got)
	}
	if !world.SetFloatParameter("conquest_mul_max", 0.5) {
		t.Fatal("expected conquest mul max to be adjustable")
	}
	if got := world.cfg.Params.ConquestMulMax; math.Abs(got-world.cfg.Params.ConquestMulMin) > 1e-9 {
		t.Fatalf("conquest mul max %f not clamped to min", got)
	}
	if world.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown key must be rejected")
	}
}

func TestSetIntParameterMaxTroopsClampsCells(t *testing.T) {
	world := NewWithConfig(testConfig(8, 8, 1))
	mustSet(t, world, 2, 2, Cell{Owner: 1, Troops: 60000})

	if !world.SetIntParameter("max_troops", 1000) {
		t.Fatal("expected max troops to be adjustable")
	}
	if got, _ := world.Get(2, 2); got.Troops != 1000 {
		t.Fatalf("existing cell not clamped: %+v", got)
	}
}

func TestSetIntParameterResizesGrid(t *testing.T) {
	world := NewWithConfig(testConfig(8, 8, 1))
	if !world.SetIntParameter("width", 12) {
		t.Fatal("expected width to be adjustable")
	}
	if got := world.Size(); got.W != 12 || got.H != 8 {
		t.Fatalf("size = %+v after width change", got)
	}
	if world.SetIntParameter("height", 0) {
		t.Fatal("non-positive height must be rejected")
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "64",
		"h":                "48",
		"seed":             "7",
		"boundary":         "clamped",
		"empires":          "6",
		"max_troops":       "255",
		"decay_scale_min":  "0.5",
		"decay_scale_max":  "0.25",
		"friendly_support": "3",
	})
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != 7 {
		t.Fatalf("dimensions/seed not applied: %+v", cfg)
	}
	if cfg.Boundary != BoundaryClamped {
		t.Fatal("boundary override not applied")
	}
	if cfg.Empires != 6 || cfg.Params.MaxTroops != 255 {
		t.Fatalf("empire/troop overrides not applied: %+v", cfg.Params)
	}
	if cfg.Params.DecayScaleMax < cfg.Params.DecayScaleMin {
		t.Fatal("decay scale range left inverted")
	}
	if cfg.Params.FriendlySupport != 3 {
		t.Fatalf("friendly support = %d", cfg.Params.FriendlySupport)
	}
}

func TestRegistryBuildsConfiguredWorld(t *testing.T) {
	factory, ok := core.Lookup("empire")
	if !ok {
		t.Fatalf("empire sim not registered (have: %v)", core.Names())
	}
	sim := factory(map[string]string{"w": "10", "h": "6"})
	world, ok := sim.(*World)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if got := world.Size(); got.W != 10 || got.H != 6 {
		t.Fatalf("size = %+v", got)
	}
	if world.Name() != "empire" {
		t.Fatalf("name = %q", world.Name())
	}
}
