// pkg/hexmap/hex.go
package hexmap

import (
	"go-hexpod-campus/pkg/utils"
)

const Sqrt3 = 1.7320508075688772

// Hex is an axial hex-grid coordinate (Q, R).
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East
// and going counter-clockwise. This order is crucial for angle-to-direction calculations.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToWorld converts the hex to ground-plane world coordinates (pointy top orientation).
// The returned pair is (x, z); towers always sit at y = 0.
func (h Hex) ToWorld(hexSize float64) (x, z float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	z = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// Add returns the sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract returns the difference of two hexes.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Distance computes the hex-grid distance between two hexes.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// AllPossibleNeighbors returns the six adjacent cells of h.
func (h Hex) AllPossibleNeighbors() []Hex {
	neighbors := make([]Hex, len(NeighborDirections))
	for i, d := range NeighborDirections {
		neighbors[i] = h.Add(d)
	}
	return neighbors
}
