package physics

import "math"

// Inertia is residual angular velocity in radians per tick
type Inertia struct {
	VX, VY float64
}

// SetImpulse overrides velocity with the latest drag sample
func (in *Inertia) SetImpulse(vx, vy float64) {
	in.VX = vx
	in.VY = vy
}

// Stop zeroes velocity
func (in *Inertia) Stop() {
	in.VX = 0
	in.VY = 0
}

// Integrate adds the current velocity to the two accumulators
func (in *Inertia) Integrate(x, y *float64) {
	*x += in.VX
	*y += in.VY
}

// Decay applies per-tick friction, factor must be in [0, 1)
func (in *Inertia) Decay(friction float64) {
	in.VX *= friction
	in.VY *= friction
}

// Magnitude returns the velocity length
func (in Inertia) Magnitude() float64 {
	return math.Hypot(in.VX, in.VY)
}
