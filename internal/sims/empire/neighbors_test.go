package empire

import (
	"sort"
	"testing"
)

func collectNeighbors(w *World, x, y int) (present []int, absent int) {
	var idx [8]int
	w.neighborIndexes(x, y, &idx)
	for _, i := range idx {
		if i < 0 {
			absent++
			continue
		}
		present = append(present, i)
	}
	sort.Ints(present)
	return present, absent
}

func TestClampedNeighborCounts(t *testing.T) {
	cfg := testConfig(4, 4, 0)
	cfg.Boundary = BoundaryClamped
	world := NewWithConfig(cfg)

	cases := []struct {
		name    string
		x, y    int
		present int
	}{
		{"corner top-left", 0, 0, 3},
		{"corner top-right", 3, 0, 3},
		{"corner bottom-left", 0, 3, 3},
		{"corner bottom-right", 3, 3, 3},
		{"edge top", 1, 0, 5},
		{"edge left", 0, 2, 5},
		{"edge right", 3, 1, 5},
		{"edge bottom", 2, 3, 5},
		{"interior", 1, 2, 8},
	}
	for _, tc := range cases {
		present, absent := collectNeighbors(world, tc.x, tc.y)
		if len(present) != tc.present || absent != 8-tc.present {
			t.Fatalf("%s: %d present / %d absent, expected %d/%d",
				tc.name, len(present), absent, tc.present, 8-tc.present)
		}
	}
}

func TestClampedCornerNeighborSet(t *testing.T) {
	cfg := testConfig(4, 4, 0)
	cfg.Boundary = BoundaryClamped
	world := NewWithConfig(cfg)

	present, _ := collectNeighbors(world, 0, 0)
	want := []int{1, 4, 5} // (1,0), (0,1), (1,1)
	if len(present) != len(want) {
		t.Fatalf("corner neighbors = %v, want %v", present, want)
	}
	for i := range want {
		if present[i] != want[i] {
			t.Fatalf("corner neighbors = %v, want %v", present, want)
		}
	}
}

func TestToroidalCornerWrapsToOppositeEdges(t *testing.T) {
	cfg := testConfig(4, 4, 0)
	cfg.Boundary = BoundaryToroidal
	world := NewWithConfig(cfg)

	present, absent := collectNeighbors(world, 0, 0)
	if absent != 0 {
		t.Fatalf("toroidal lookup reported %d absent neighbors", absent)
	}
	// Moore neighborhood of (0,0) on a 4x4 torus.
	want := []int{1, 3, 4, 5, 7, 12, 13, 15}
	for i := range want {
		if present[i] != want[i] {
			t.Fatalf("toroidal neighbors = %v, want %v", present, want)
		}
	}
}

func TestParseBoundary(t *testing.T) {
	for _, s := range []string{"toroidal", "torus", "wrap"} {
		if b, err := ParseBoundary(s); err != nil || b != BoundaryToroidal {
			t.Fatalf("ParseBoundary(%q) = %v, %v", s, b, err)
		}
	}
	for _, s := range []string{"clamped", "bounded"} {
		if b, err := ParseBoundary(s); err != nil || b != BoundaryClamped {
			t.Fatalf("ParseBoundary(%q) = %v, %v", s, b, err)
		}
	}
	if _, err := ParseBoundary("mirror"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
