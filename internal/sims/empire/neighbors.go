package empire

import "fmt"

// Boundary selects how coordinates past the grid edge are resolved.
type Boundary uint8

const (
	// BoundaryToroidal wraps coordinates modulo the grid dimensions, so
	// every cell has exactly 8 Moore neighbors.
	BoundaryToroidal Boundary = iota
	// BoundaryClamped treats out-of-range coordinates as absent, so edge
	// and corner cells have 5 and 3 neighbors respectively.
	BoundaryClamped
)

// ParseBoundary maps a config string to a boundary policy.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "toroidal", "torus", "wrap":
		return BoundaryToroidal, nil
	case "clamped", "bounded":
		return BoundaryClamped, nil
	}
	return BoundaryToroidal, fmt.Errorf("unknown boundary policy %q", s)
}

// String implements flag.Value.
func (b Boundary) String() string {
	if b == BoundaryClamped {
		return "clamped"
	}
	return "toroidal"
}

// Set implements flag.Value.
func (b *Boundary) Set(s string) error {
	parsed, err := ParseBoundary(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// mooreOffsets lists the 8 neighbor offsets in the order world updates
// visit them. The order carries no semantic weight; contention order is
// randomized separately.
var mooreOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// neighborIndexes fills out with the linear index of each Moore neighbor of
// (x, y) under the world's boundary policy, using -1 for absent slots. The
// fixed-size out parameter keeps the per-cell hot path allocation free. The
// same lookup backs the update engine and the frontier/overlay queries so
// both agree on what "edge of the grid" means.
func (w *World) neighborIndexes(x, y int, out *[8]int) {
	for k, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if w.cfg.Boundary == BoundaryToroidal {
			nx, ny = w.bounds.Wrap(nx, ny)
			out[k] = w.bounds.Index(nx, ny)
			continue
		}
		if !w.bounds.In(nx, ny) {
			out[k] = -1
			continue
		}
		out[k] = w.bounds.Index(nx, ny)
	}
}
