// pkg/geom/segment.go
package geom

import "math"

// Segment is a ground-level line segment between two world points.
type Segment struct {
	From, To Vec3
}

// Length returns the planar length of the segment.
func (s Segment) Length() float64 {
	return s.From.DistXZ(s.To)
}

// PointAlong returns the ground-plane point at parametric t in [0,1].
// The result always has y = 0.
func (s Segment) PointAlong(t float64) Vec3 {
	return Vec3{
		X: s.From.X + (s.To.X-s.From.X)*t,
		Y: 0,
		Z: s.From.Z + (s.To.Z-s.From.Z)*t,
	}
}

// ClosestPoint projects p onto the segment in the ground plane and clamps the
// parametric value to [0,1]. It returns the clamped t, the projected point and
// the planar distance from p to that point.
func (s Segment) ClosestPoint(p Vec3) (t float64, point Vec3, dist float64) {
	dx := s.To.X - s.From.X
	dz := s.To.Z - s.From.Z
	lenSq := dx*dx + dz*dz
	if lenSq == 0 {
		point = s.PointAlong(0)
		return 0, point, p.DistXZ(point)
	}
	t = ((p.X-s.From.X)*dx + (p.Z-s.From.Z)*dz) / lenSq
	t = ClampF(t, 0, 1)
	point = s.PointAlong(t)
	return t, point, p.DistXZ(point)
}

// ParabolicPoint interpolates between from and to at progress t, adding a vertical
// offset of 4*peak*t*(1-t) on top of the linear height: the result equals from at
// t = 0, to at t = 1, and sits peak above the linear midpoint at t = 0.5.
func ParabolicPoint(from, to Vec3, t, peak float64) Vec3 {
	p := Segment{From: from, To: to}.PointAlong(t)
	p.Y = from.Y + (to.Y-from.Y)*t + 4*peak*t*(1-t)
	return p
}

// InCircle reports whether p lies within the flat circle of the given center and
// radius. Height is ignored.
func InCircle(p, center Vec3, radius float64) bool {
	return p.DistXZ(center) <= radius
}

// ClampF limits v to the range [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
