package hexmap

import "testing"

func TestSpiralCountAndUniqueness(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Empty", 0},
		{"CenterOnly", 1},
		{"FirstRingPartial", 4},
		{"FirstRingFull", 7},
		{"SecondRingFull", 19},
		{"ThirdRingPartial", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Spiral(tt.n)
			if len(cells) != tt.n {
				t.Fatalf("Expected %d cells, got %d", tt.n, len(cells))
			}
			seen := make(map[Hex]struct{}, tt.n)
			for _, c := range cells {
				if _, dup := seen[c]; dup {
					t.Errorf("Duplicate cell %v", c)
				}
				seen[c] = struct{}{}
			}
			if tt.n > 0 && cells[0] != (Hex{Q: 0, R: 0}) {
				t.Errorf("Expected center first, got %v", cells[0])
			}
		})
	}
}

func TestSpiralRingMembership(t *testing.T) {
	// Cells 1..6 must be ring 1, cells 7..18 ring 2.
	cells := Spiral(19)
	center := Hex{Q: 0, R: 0}
	for i, c := range cells {
		wantRing := 0
		switch {
		case i >= 7:
			wantRing = 2
		case i >= 1:
			wantRing = 1
		}
		if d := center.Distance(c); d != wantRing {
			t.Errorf("Cell %d (%v): expected ring %d, got %d", i, c, wantRing, d)
		}
	}
}

func TestSpiralIsDeterministic(t *testing.T) {
	a := Spiral(30)
	b := Spiral(30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Cell %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}
