package hexmap

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		from, to Hex
		want     int
	}{
		{"Same", Hex{0, 0}, Hex{0, 0}, 0},
		{"Neighbor", Hex{0, 0}, Hex{1, 0}, 1},
		{"DiagonalNeighbor", Hex{0, 0}, Hex{1, -1}, 1},
		{"TwoAway", Hex{0, 0}, Hex{2, 0}, 2},
		{"Mixed", Hex{-2, 1}, Hex{1, -1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Distance(tt.to); got != tt.want {
				t.Errorf("Expected distance %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNeighborDirectionsAreUnitRing(t *testing.T) {
	if len(NeighborDirections) != 6 {
		t.Fatalf("Expected 6 directions, got %d", len(NeighborDirections))
	}
	center := Hex{0, 0}
	seen := make(map[Hex]struct{})
	for _, d := range NeighborDirections {
		if center.Distance(d) != 1 {
			t.Errorf("Direction %v is not distance 1 from center", d)
		}
		seen[d] = struct{}{}
	}
	if len(seen) != 6 {
		t.Errorf("Directions are not distinct")
	}
}

func TestToWorldPointyTop(t *testing.T) {
	const size = 10.0

	x, z := Hex{0, 0}.ToWorld(size)
	if x != 0 || z != 0 {
		t.Errorf("Center should map to origin, got (%f, %f)", x, z)
	}

	// East neighbor sits sqrt(3)*size along +X, on the same z.
	x, z = Hex{1, 0}.ToWorld(size)
	if math.Abs(x-size*Sqrt3) > 1e-9 || math.Abs(z) > 1e-9 {
		t.Errorf("East neighbor misplaced: (%f, %f)", x, z)
	}

	// All six neighbors must be equidistant from the center.
	want := size * Sqrt3
	for _, d := range NeighborDirections {
		nx, nz := d.ToWorld(size)
		dist := math.Hypot(nx, nz)
		if math.Abs(dist-want) > 1e-9 {
			t.Errorf("Neighbor %v at distance %f, expected %f", d, dist, want)
		}
	}
}

func TestAllPossibleNeighbors(t *testing.T) {
	h := Hex{Q: 3, R: -2}
	neighbors := h.AllPossibleNeighbors()
	if len(neighbors) != 6 {
		t.Fatalf("Expected 6 neighbors, got %d", len(neighbors))
	}
	for i, n := range neighbors {
		if h.Distance(n) != 1 {
			t.Errorf("Neighbor %v is not adjacent to %v", n, h)
		}
		if want := h.Add(NeighborDirections[i]); n != want {
			t.Errorf("Neighbor %d: expected %v, got %v", i, want, n)
		}
	}
}

func TestAddSubtractScale(t *testing.T) {
	h := Hex{2, -1}
	if got := h.Add(Hex{-1, 3}); got != (Hex{1, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := h.Subtract(Hex{2, -1}); got != (Hex{0, 0}) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := h.Scale(3); got != (Hex{6, -3}) {
		t.Errorf("Scale: got %v", got)
	}
}
