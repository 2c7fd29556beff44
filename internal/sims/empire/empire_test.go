package empire

import (
	"image/color"
	"slices"
	"testing"
)

func testConfig(w, h, empires int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Empires = empires
	cfg.Seed = 99
	return cfg
}

func TestResetDeterministic(t *testing.T) {
	cfg := testConfig(32, 24, 4)
	world := NewWithConfig(cfg)
	world.Reset(0)

	initial := append([]Cell(nil), world.Snapshot()...)
	if len(initial) != 32*24 {
		t.Fatalf("expected %d cells, got %d", 32*24, len(initial))
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	if err := world.Set(3, 3, Cell{Owner: 1, Troops: 77}); err != nil {
		t.Fatal(err)
	}
	world.Reset(0)
	if !slices.Equal(initial, world.Snapshot()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	other := append([]Cell(nil), world.Snapshot()...)
	world.Reset(777)
	if !slices.Equal(other, world.Snapshot()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, other) {
		t.Fatal("different seeds should produce different initial states")
	}
}

func TestStepInvariants(t *testing.T) {
	cfg := testConfig(48, 32, 4)
	world := NewWithConfig(cfg)
	world.Reset(0)

	for step := 0; step < 50; step++ {
		world.Step()
		if got := world.Tick(); got != uint64(step+1) {
			t.Fatalf("tick = %d after %d steps", got, step+1)
		}
		cells := world.Snapshot()
		if len(cells) != 48*32 {
			t.Fatalf("cell count changed to %d", len(cells))
		}
		for i, c := range cells {
			if (c.Owner == 0) != (c.Troops == 0) {
				t.Fatalf("step %d cell %d: owner=%d troops=%d violates invariant", step, i, c.Owner, c.Troops)
			}
			if c.Troops > world.MaxTroops() {
				t.Fatalf("step %d cell %d: troops %d above ceiling", step, i, c.Troops)
			}
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	cfg := testConfig(16, 16, 0)
	world := NewWithConfig(cfg)
	world.Reset(0)

	for step := 0; step < 20; step++ {
		world.Step()
	}
	for i, c := range world.Snapshot() {
		if c.Owner != 0 || c.Troops != 0 {
			t.Fatalf("cell %d spontaneously became %+v", i, c)
		}
	}
}

func TestSingleEmpireSaturation(t *testing.T) {
	cfg := testConfig(16, 16, 1)
	world := NewWithConfig(cfg)
	world.Reset(0)

	for step := 0; step < 100; step++ {
		world.Step()
		for i, c := range world.Snapshot() {
			if c.Owner != 0 && c.Owner != 1 {
				t.Fatalf("step %d cell %d owned by unknown empire %d", step, i, c.Owner)
			}
		}
	}
}

func TestToroidalSingleSourceScenario(t *testing.T) {
	cfg := testConfig(3, 3, 1)
	cfg.Boundary = BoundaryToroidal
	world := NewWithConfig(cfg)
	if err := world.Set(1, 1, Cell{Owner: 1, Troops: world.MaxTroops()}); err != nil {
		t.Fatal(err)
	}

	world.Step()

	for i, c := range world.Snapshot() {
		if c.Owner != 0 && c.Owner != 1 {
			t.Fatalf("cell %d captured by unexpected empire %d", i, c.Owner)
		}
	}
}

func TestGetPureRead(t *testing.T) {
	cfg := testConfig(8, 8, 2)
	world := NewWithConfig(cfg)
	world.Reset(0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			a, okA := world.Get(x, y)
			b, okB := world.Get(x, y)
			if okA != okB || a != b {
				t.Fatalf("Get(%d,%d) not stable: %+v/%v vs %+v/%v", x, y, a, okA, b, okB)
			}
		}
	}
}

func TestGetToroidalWraps(t *testing.T) {
	cfg := testConfig(5, 4, 1)
	cfg.Boundary = BoundaryToroidal
	world := NewWithConfig(cfg)
	if err := world.Set(4, 3, Cell{Owner: 1, Troops: 42}); err != nil {
		t.Fatal(err)
	}

	got, ok := world.Get(-1, -1)
	if !ok {
		t.Fatal("toroidal Get must always find a cell")
	}
	if got.Owner != 1 || got.Troops != 42 {
		t.Fatalf("Get(-1,-1) = %+v, expected wrap to (4,3)", got)
	}
}

func TestSetPreconditions(t *testing.T) {
	cfg := testConfig(8, 8, 1)
	world := NewWithConfig(cfg)

	if err := world.Set(8, 0, Cell{}); err == nil {
		t.Fatal("expected error for x out of range")
	}
	if err := world.Set(0, -1, Cell{}); err == nil {
		t.Fatal("expected error for negative y")
	}
	if err := world.Set(0, 0, Cell{Owner: 9, Troops: 1}); err == nil {
		t.Fatal("expected error for unregistered empire")
	}

	// Owner and troops are normalized to keep the invariant.
	if err := world.Set(1, 1, Cell{Owner: 1, Troops: 0}); err != nil {
		t.Fatal(err)
	}
	if got, _ := world.Get(1, 1); got.Owner != 0 {
		t.Fatalf("zero-troop cell kept owner: %+v", got)
	}

	cfg.Params.MaxTroops = 100
	small := NewWithConfig(cfg)
	if err := small.Set(0, 0, Cell{Owner: 1, Troops: 5000}); err != nil {
		t.Fatal(err)
	}
	if got, _ := small.Get(0, 0); got.Troops != 100 {
		t.Fatalf("troops not clamped to ceiling: %+v", got)
	}
}

func TestAddEmpireAssignsSequentialIDs(t *testing.T) {
	cfg := testConfig(4, 4, 0)
	world := NewWithConfig(cfg)

	a := world.AddEmpire(color.RGBA{R: 255, A: 255})
	b := world.AddEmpire(color.RGBA{G: 255, A: 255})
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d; expected 1, 2", a, b)
	}

	got, ok := world.EmpireByID(b)
	if !ok || got.Color.G != 255 {
		t.Fatalf("EmpireByID(%d) = %+v, %v", b, got, ok)
	}
	if _, ok := world.EmpireByID(3); ok {
		t.Fatal("lookup of unknown empire must fail")
	}
}

func TestResizePreservesTickAndEmpires(t *testing.T) {
	cfg := testConfig(16, 16, 3)
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.Step()
	world.Step()

	if err := world.Resize(24, 10); err != nil {
		t.Fatal(err)
	}
	if got := world.Size(); got.W != 24 || got.H != 10 {
		t.Fatalf("size = %+v after resize", got)
	}
	if len(world.Snapshot()) != 24*10 {
		t.Fatalf("cell count %d after resize", len(world.Snapshot()))
	}
	for i, c := range world.Snapshot() {
		if c != (Cell{}) {
			t.Fatalf("cell %d not blank after resize: %+v", i, c)
		}
	}
	if world.Tick() != 2 {
		t.Fatalf("tick reset by resize: %d", world.Tick())
	}
	if len(world.Empires()) != 3 {
		t.Fatalf("empire registry changed by resize: %d entries", len(world.Empires()))
	}

	if err := world.Resize(0, 5); err == nil {
		t.Fatal("expected error for non-positive dimensions")
	}
}

func TestStandingsAndWinner(t *testing.T) {
	cfg := testConfig(8, 8, 2)
	world := NewWithConfig(cfg)

	for x := 0; x < 4; x++ {
		if err := world.Set(x, 0, Cell{Owner: 1, Troops: 10}); err != nil {
			t.Fatal(err)
		}
	}
	if err := world.Set(7, 7, Cell{Owner: 2, Troops: 100}); err != nil {
		t.Fatal(err)
	}

	standings := world.Standings()
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(standings))
	}
	if standings[0].Empire.ID != 2 || standings[0].Troops != 100 {
		t.Fatalf("strongest first expected empire 2, got %+v", standings[0])
	}
	if standings[1].Cells != 4 || standings[1].Troops != 40 {
		t.Fatalf("empire 1 aggregate wrong: %+v", standings[1])
	}

	if _, ok := world.Winner(); ok {
		t.Fatal("no winner while two empires hold cells")
	}
	if err := world.Set(7, 7, Cell{}); err != nil {
		t.Fatal(err)
	}
	winner, ok := world.Winner()
	if !ok || winner.ID != 1 {
		t.Fatalf("winner = %+v, %v; expected empire 1", winner, ok)
	}
}

func TestFrontierMask(t *testing.T) {
	cfg := testConfig(6, 6, 2)
	cfg.Boundary = BoundaryClamped
	world := NewWithConfig(cfg)

	if err := world.Set(1, 1, Cell{Owner: 1, Troops: 10}); err != nil {
		t.Fatal(err)
	}
	if err := world.Set(2, 1, Cell{Owner: 2, Troops: 10}); err != nil {
		t.Fatal(err)
	}
	if err := world.Set(5, 5, Cell{Owner: 1, Troops: 10}); err != nil {
		t.Fatal(err)
	}

	mask := make([]float32, 36)
	world.FrontierMask(mask)

	if mask[1*6+1] != 1 || mask[1*6+2] != 1 {
		t.Fatal("touching enemies must be marked as frontier")
	}
	if mask[5*6+5] != 0 {
		t.Fatal("isolated cell marked as frontier")
	}
	if mask[0] != 0 {
		t.Fatal("unclaimed cell marked as frontier")
	}
}
