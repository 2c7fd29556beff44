package empire

import (
	"fmt"
	"image/color"

	"territory/internal/core"
	pcore "territory/pkg/core"
)

// Cell is one grid unit: the owning empire (0 = unclaimed) and its troop
// strength. An unclaimed cell always has zero troops.
type Cell struct {
	Owner  uint16
	Troops uint16
}

// Empire is a faction competing for cells.
type Empire struct {
	ID    uint16
	Color color.RGBA
}

// World stores the grid, the empire registry and the generation counter.
//
// The cell buffer is double buffered: Step computes the next generation
// entirely from the current one and swaps the buffers once at the end, so a
// reader between Step calls never sees a partial generation.
type World struct {
	cfg    Config
	bounds core.Bounds

	cur  []Cell
	next []Cell

	empires   []Empire
	empireIdx map[uint16]int

	tick uint64

	// seed is the effective seed of the current run; worker RNG streams
	// derive from it so Reset reseeds the whole engine, not just placement.
	seed       int64
	rng        *pcore.RNG
	workerRNGs []*pcore.RNG
}

// New returns an empire world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empire world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	bounds := core.NewBounds(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = bounds.W, bounds.H
	w := &World{
		cfg:       cfg,
		bounds:    bounds,
		cur:       make([]Cell, bounds.Len()),
		next:      make([]Cell, bounds.Len()),
		empireIdx: map[uint16]int{},
		seed:      cfg.Seed,
		rng:       pcore.NewRNG(cfg.Seed),
	}
	for i := 0; i < cfg.Empires; i++ {
		w.AddEmpire(w.randomColor())
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "empire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.bounds.W, H: w.bounds.H} }

// Tick reports the number of generations stepped so far.
func (w *World) Tick() uint64 { return w.tick }

// MaxTroops reports the configured troop ceiling.
func (w *World) MaxTroops() uint16 { return w.cfg.Params.MaxTroops }

// Boundary reports the configured edge policy.
func (w *World) Boundary() Boundary { return w.cfg.Boundary }

// Snapshot exposes the current generation's cells in row-major order.
// Callers must treat the slice as read only; it is valid until the next
// Step call swaps buffers.
func (w *World) Snapshot() []Cell { return w.cur }

// Empires returns the registry in insertion order.
func (w *World) Empires() []Empire { return w.empires }

// EmpireByID looks up an empire without assuming ids map to positions.
func (w *World) EmpireByID(id uint16) (Empire, bool) {
	i, ok := w.empireIdx[id]
	if !ok {
		return Empire{}, false
	}
	return w.empires[i], true
}

// Get returns the cell at (x, y) under the boundary policy. With toroidal
// edges the coordinates wrap and a cell is always found; with clamped edges
// the second return is false outside the grid.
func (w *World) Get(x, y int) (Cell, bool) {
	if w.cfg.Boundary == BoundaryToroidal {
		x, y = w.bounds.Wrap(x, y)
		return w.cur[w.bounds.Index(x, y)], true
	}
	if !w.bounds.In(x, y) {
		return Cell{}, false
	}
	return w.cur[w.bounds.Index(x, y)], true
}

// Set writes a cell at (x, y). Coordinates are strict regardless of the
// boundary policy: painting past the edge is a precondition violation, not
// a wrap. The engine never calls Set; it exists for external painting.
func (w *World) Set(x, y int, c Cell) error {
	if !w.bounds.In(x, y) {
		return fmt.Errorf("set (%d,%d) outside %dx%d grid", x, y, w.bounds.W, w.bounds.H)
	}
	if c.Owner != 0 {
		if _, ok := w.empireIdx[c.Owner]; !ok {
			return fmt.Errorf("set (%d,%d): no empire with id %d", x, y, c.Owner)
		}
	}
	if c.Owner == 0 {
		c.Troops = 0
	}
	if c.Troops == 0 {
		c.Owner = 0
	}
	if c.Troops > w.cfg.Params.MaxTroops {
		c.Troops = w.cfg.Params.MaxTroops
	}
	w.cur[w.bounds.Index(x, y)] = c
	return nil
}

// AddEmpire appends an empire with the next id and returns that id.
// Empires are never removed.
func (w *World) AddEmpire(col color.RGBA) uint16 {
	id := uint16(len(w.empires) + 1)
	w.empires = append(w.empires, Empire{ID: id, Color: col})
	w.empireIdx[id] = len(w.empires) - 1
	return id
}

// RandomColor draws a display color for a new empire.
func (w *World) RandomColor() color.RGBA { return w.randomColor() }

func (w *World) randomColor() color.RGBA {
	return color.RGBA{R: w.rng.Uint8(), G: w.rng.Uint8(), B: w.rng.Uint8(), A: 255}
}

// Resize reallocates the grid blank at the new dimensions. The tick counter
// and the empire registry are preserved.
func (w *World) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize to %dx%d: dimensions must be positive", width, height)
	}
	w.bounds = core.NewBounds(width, height)
	w.cfg.Width, w.cfg.Height = width, height
	w.cur = make([]Cell, w.bounds.Len())
	w.next = make([]Cell, w.bounds.Len())
	return nil
}

// Reset blanks the grid and drops one seed cell per empire at a random
// position with a random garrison. A zero seed falls back to the config
// seed so default resets are reproducible.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.rng = pcore.NewRNG(effective)
	w.workerRNGs = nil
	for i := range w.cur {
		w.cur[i] = Cell{}
		w.next[i] = Cell{}
	}
	for _, e := range w.empires {
		x := w.rng.IntN(w.bounds.W)
		y := w.rng.IntN(w.bounds.H)
		w.cur[w.bounds.Index(x, y)] = Cell{
			Owner:  e.ID,
			Troops: w.rng.Uint16Range(1, w.cfg.Params.MaxTroops),
		}
	}
}
