// pkg/render/scene.go
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/defs"
	"go-hexpod-campus/internal/layout"
	"go-hexpod-campus/internal/nav"
	"go-hexpod-campus/pkg/geom"
)

// ToVector3 converts a world point to a raylib vector.
func ToVector3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// DrawScene draws the whole campus inside an active 3D mode: tower floor slabs,
// roads and the ground-level boundary circles.
func DrawScene(sites []layout.TowerSite, net *layout.Network) {
	towerColor := ToRL(config.TowerColor)
	topColor := ToRL(config.TowerTopColor)
	roadColor := ToRL(config.RoadColor)
	boundaryColor := ToRL(config.BoundaryColor)

	for _, road := range net.Roads {
		rl.DrawCylinderEx(ToVector3(road.Segment.From), ToVector3(road.Segment.To), 0.6, 0.6, 6, roadColor)
	}

	for _, site := range sites {
		center := ToVector3(site.World)
		rl.DrawCircle3D(center, float32(site.Radius), rl.NewVector3(1, 0, 0), 90, boundaryColor)
		for i, floor := range site.Floors {
			y := float32(float64(i) * config.FloorSpacing)
			slabCenter := rl.NewVector3(center.X, y, center.Z)
			radius := floorRadius(floor)
			c := ColorLerp(towerColor, topColor, float32(i)/float32(len(site.Floors)))
			rl.DrawCylinder(slabCenter, radius, radius, 0.5, 6, c)
		}
	}
}

func floorRadius(floor defs.FloorDefinition) float32 {
	maxRing := 0
	for _, ring := range floor.Rings {
		if ring.RadiusIndex > maxRing {
			maxRing = ring.RadiusIndex
		}
	}
	return float32(float64(maxRing+1) * config.FloorRadiusScale)
}

// DrawPod draws the hexagonal capsule at its current position with a short nose
// line showing the heading.
func DrawPod(snap nav.Snapshot) {
	base := snap.Position
	base.Y -= config.PodHeight / 2
	podColor := ToRL(config.PodColor)
	edgeColor := ToRL(DarkenColor(config.PodColor))
	rl.DrawCylinder(ToVector3(base), float32(config.PodRadius), float32(config.PodRadius), float32(config.PodHeight), 6, podColor)
	rl.DrawCylinderWires(ToVector3(base), float32(config.PodRadius), float32(config.PodRadius), float32(config.PodHeight), 6, edgeColor)

	angle := float64(snap.Heading) / config.HeadingSteps * 2 * math.Pi
	nose := geom.Vec3{X: math.Sin(angle), Z: math.Cos(angle)}.Scale(config.PodRadius * 2)
	tip := snap.Position.Add(nose)
	rl.DrawLine3D(ToVector3(snap.Position), ToVector3(tip), rl.White)
}
