package vmath

import "math"

// GoldenAngle is π(3-√5), the angular step between consecutive Fibonacci sphere points
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Rotation caches sine and cosine of one angle so a frame pays for trig once
type Rotation struct {
	Sin, Cos float64
}

// NewRotation precomputes the rotation for angle in radians
func NewRotation(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{Sin: s, Cos: c}
}

// Yaw rotates v about the Y axis
func (r Rotation) Yaw(v Vec3F) Vec3F {
	return Vec3F{
		X: v.X*r.Cos - v.Z*r.Sin,
		Y: v.Y,
		Z: v.Z*r.Cos + v.X*r.Sin,
	}
}

// Pitch rotates v about the X axis
func (r Rotation) Pitch(v Vec3F) Vec3F {
	return Vec3F{
		X: v.X,
		Y: v.Y*r.Cos - v.Z*r.Sin,
		Z: v.Z*r.Cos + v.Y*r.Sin,
	}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor ±Inf
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
