package vmath

import "math"

// Vec3F is a float64 3D vector for the projection path
// Sphere-local and camera-space coordinates both use it
type Vec3F struct {
	X, Y, Z float64
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// Dist2D returns the planar distance between two screen positions
func Dist2D(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
