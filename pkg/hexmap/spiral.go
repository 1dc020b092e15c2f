// pkg/hexmap/spiral.go
package hexmap

// spiralSides lists the walk directions for tracing one hex ring counter-clockwise,
// starting from the ring's East corner (k, 0). The order differs from
// NeighborDirections because each side is walked from the previous corner.
var spiralSides = []Hex{
	{Q: 0, R: -1}, {Q: -1, R: 0}, {Q: -1, R: 1},
	{Q: 0, R: 1}, {Q: 1, R: 0}, {Q: 1, R: -1},
}

// Spiral returns the first n cells of the hex spiral: the center (0,0) followed by
// ring 1, ring 2 and so on, each ring walked counter-clockwise from its East corner.
// The result is deterministic and gap-free for any n >= 0.
func Spiral(n int) []Hex {
	cells := make([]Hex, 0, n)
	if n <= 0 {
		return cells
	}
	cells = append(cells, Hex{Q: 0, R: 0})
	for k := 1; len(cells) < n; k++ {
		pos := Hex{Q: k, R: 0}
		for _, side := range spiralSides {
			for step := 0; step < k; step++ {
				if len(cells) == n {
					return cells
				}
				cells = append(cells, pos)
				pos = pos.Add(side)
			}
		}
	}
	return cells
}
