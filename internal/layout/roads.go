// internal/layout/roads.go
package layout

import (
	"fmt"

	"go-hexpod-campus/pkg/geom"
	"go-hexpod-campus/pkg/hexmap"
)

// Road is an undirected ground-level connector between two hex-adjacent towers.
// The ID is canonical: the two tower ids sorted ascending, so each adjacent pair
// produces exactly one segment regardless of build order.
type Road struct {
	ID        string
	FromID    string
	ToID      string
	FromAxial hexmap.Hex
	ToAxial   hexmap.Hex
	Segment   geom.Segment
}

// OtherEnd returns the tower id at the opposite end of the road.
func (r *Road) OtherEnd(towerID string) string {
	if r.FromID == towerID {
		return r.ToID
	}
	return r.FromID
}

// Boundary is a tower's flat circular footprint on the ground plane, used for
// "is the pod inside this tower" tests.
type Boundary struct {
	TowerID        string
	Axial          hexmap.Hex
	Center         geom.Vec3
	Radius         float64
	MaxFloorHeight float64
}

// Network is the road connectivity graph over one layout pass. It is a pure
// function of the tower sites and must be rebuilt whenever they change.
type Network struct {
	Roads      []*Road
	Boundaries []Boundary

	byTower map[string][]*Road
}

// RoadID builds the canonical key for a tower pair.
func RoadID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s:%s", a, b)
}

// BuildNetwork derives road segments from every hex-adjacent tower pair and one
// boundary record per tower.
func BuildNetwork(sites []TowerSite) *Network {
	byAxial := make(map[hexmap.Hex]TowerSite, len(sites))
	for _, site := range sites {
		byAxial[site.Axial] = site
	}

	net := &Network{byTower: make(map[string][]*Road)}
	seen := make(map[string]struct{})
	for _, site := range sites {
		net.Boundaries = append(net.Boundaries, Boundary{
			TowerID:        site.ID,
			Axial:          site.Axial,
			Center:         site.World,
			Radius:         site.Radius,
			MaxFloorHeight: site.MaxFloorHeight,
		})
		for _, cell := range site.Axial.AllPossibleNeighbors() {
			neighbor, ok := byAxial[cell]
			if !ok {
				continue
			}
			id := RoadID(site.ID, neighbor.ID)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			road := &Road{
				ID:        id,
				FromID:    site.ID,
				ToID:      neighbor.ID,
				FromAxial: site.Axial,
				ToAxial:   neighbor.Axial,
				Segment:   geom.Segment{From: site.World, To: neighbor.World},
			}
			net.Roads = append(net.Roads, road)
			net.byTower[site.ID] = append(net.byTower[site.ID], road)
			net.byTower[neighbor.ID] = append(net.byTower[neighbor.ID], road)
		}
	}
	return net
}

// ConnectedRoads returns all roads touching the given tower.
func (n *Network) ConnectedRoads(towerID string) []*Road {
	return n.byTower[towerID]
}

// BoundaryContaining returns the boundary whose circle contains p, if any.
func (n *Network) BoundaryContaining(p geom.Vec3) (Boundary, bool) {
	for _, b := range n.Boundaries {
		if geom.InCircle(p, b.Center, b.Radius) {
			return b, true
		}
	}
	return Boundary{}, false
}

// ClosestRoad finds the road nearest to p and the clamped parametric position of
// the projection. Zero-length segments are skipped. ok is false when the network
// has no usable roads.
func (n *Network) ClosestRoad(p geom.Vec3) (road *Road, t float64, ok bool) {
	best := -1.0
	for _, r := range n.Roads {
		if r.Segment.Length() == 0 {
			continue
		}
		rt, _, dist := r.Segment.ClosestPoint(p)
		if best < 0 || dist < best {
			best = dist
			road = r
			t = rt
			ok = true
		}
	}
	return road, t, ok
}
