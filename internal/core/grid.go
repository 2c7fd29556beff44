package core

// Bounds provides row-major addressing for a 2D grid of the given
// dimensions. It carries no cell data; simulations keep their own buffers
// and share the coordinate math.
type Bounds struct {
	W, H int
}

// NewBounds returns addressing for a grid with the given dimensions.
func NewBounds(w, h int) Bounds {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Bounds{W: w, H: h}
}

// Len returns the number of cells the bounds cover.
func (b Bounds) Len() int { return b.W * b.H }

// Index returns the linear slice index for coordinates (x, y).
func (b Bounds) Index(x, y int) int { return y*b.W + x }

// In reports whether (x, y) lies inside [0,W) x [0,H).
func (b Bounds) In(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b Bounds) Wrap(x, y int) (int, int) {
	x = (x%b.W + b.W) % b.W
	y = (y%b.H + b.H) % b.H
	return x, y
}
