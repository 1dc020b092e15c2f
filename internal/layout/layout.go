// internal/layout/layout.go
package layout

import (
	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/pkg/geom"
	"go-hexpod-campus/pkg/hexmap"
	"go-hexpod-campus/pkg/utils"
)

// TowerSite is one tower placed on the hex grid, with its derived world geometry.
type TowerSite struct {
	ID             string
	Label          string
	Axial          hexmap.Hex
	World          geom.Vec3
	Radius         float64
	MaxFloorHeight float64
	FloorCount     int
	Floors         []defs.FloorDefinition
}

// BuildSites assigns one spiral cell per tower (in OrderIndex order) and derives
// each tower's world position, footprint radius and height. Exactly one tower
// occupies each axial cell.
func BuildSites(towers []defs.TowerDefinition, floorsByTower map[string][]defs.FloorDefinition) []TowerSite {
	cells := hexmap.Spiral(len(towers))
	sites := make([]TowerSite, len(towers))
	for i, def := range towers {
		axial := cells[i]
		x, z := axial.ToWorld(config.HexSize * config.CoordScale)
		floors := floorsByTower[def.ID]

		maxRing := 0
		for _, floor := range floors {
			for _, ring := range floor.Rings {
				maxRing = utils.Max(maxRing, ring.RadiusIndex)
			}
		}
		floorCount := len(floors)
		maxHeight := 0.0
		if floorCount > 1 {
			maxHeight = float64(floorCount-1) * config.FloorSpacing
		}

		sites[i] = TowerSite{
			ID:             def.ID,
			Label:          def.Label,
			Axial:          axial,
			World:          geom.Vec3{X: x, Y: 0, Z: z},
			Radius:         float64(maxRing+1) * config.FloorRadiusScale,
			MaxFloorHeight: maxHeight,
			FloorCount:     floorCount,
			Floors:         floors,
		}
	}
	return sites
}

// SiteIndex builds an ID-keyed lookup over sites.
func SiteIndex(sites []TowerSite) map[string]TowerSite {
	index := make(map[string]TowerSite, len(sites))
	for _, site := range sites {
		index[site.ID] = site
	}
	return index
}
