// internal/nav/camera.go
package nav

import (
	"math"

	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/pkg/geom"
)

// Pose is one camera placement, rotation applied in yaw-pitch-roll order.
type Pose struct {
	Position geom.Vec3
	Yaw      float64 // radians
	Pitch    float64 // radians
	Roll     float64 // radians, always 0
}

// ComposeCamera derives the camera pose from the pod position and the five
// camera controls. Pure function of the snapshot; called once per frame.
func ComposeCamera(s Snapshot) Pose {
	pos := s.Position

	// 10% margin at floor and ceiling; the five height levels span the rest.
	pos.Y += config.PodHeight*0.1 + config.PodHeight*0.8*float64(s.CameraHeight)/4

	// Slot 0 keeps the camera centered in the pod; slots 1..6 offset it toward
	// one of the hex faces, rotated with the pod's heading.
	if s.CameraSlot > 0 {
		faceAngle := headingToRad(s.Heading) + float64(s.CameraSlot-1)/config.HeadingSteps*2*math.Pi
		offset := config.PodRadius * 0.5
		pos.X += math.Sin(faceAngle) * offset
		pos.Z += math.Cos(faceAngle) * offset
	}

	return Pose{
		Position: pos,
		Yaw:      headingToRad(s.Heading) + float64(s.CameraPan)*math.Pi/180,
		Pitch:    -float64(s.CameraTilt-90) * math.Pi / 180,
		Roll:     0,
	}
}

// Forward returns the unit view direction of the pose. Yaw 0 looks along +Z,
// pitch raises the view toward +Y.
func (p Pose) Forward() geom.Vec3 {
	cosPitch := math.Cos(p.Pitch)
	return geom.Vec3{
		X: math.Sin(p.Yaw) * cosPitch,
		Y: math.Sin(p.Pitch),
		Z: math.Cos(p.Yaw) * cosPitch,
	}
}
