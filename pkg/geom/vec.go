// pkg/geom/vec.go
package geom

import "math"

// Vec3 is a world-space point or vector. Y is up; the ground plane is y = 0.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// DistXZ returns the planar distance between two points, ignoring height.
func (v Vec3) DistXZ(other Vec3) float64 {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return math.Hypot(dx, dz)
}

// AngleXZ returns the ground-plane angle of the vector in radians,
// measured from +Z toward +X. Zero-length vectors yield 0.
func (v Vec3) AngleXZ() float64 {
	return math.Atan2(v.X, v.Z)
}
