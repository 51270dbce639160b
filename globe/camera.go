package globe

import (
	"github.com/lixenwraith/lucky-globe/physics"
	"github.com/lixenwraith/lucky-globe/vmath"
)

// Mode is derived every tick from the host's spin flag and never latched
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeSpinning
)

// ModeFor maps the external spin flag to a mode
func ModeFor(spinning bool) Mode {
	if spinning {
		return ModeSpinning
	}
	return ModeIdle
}

func (m Mode) String() string {
	if m == ModeSpinning {
		return "Spinning"
	}
	return "Idle"
}

// Pointer is a surface position in world pixels
type Pointer struct {
	X, Y float64
}

// CameraState is the per-visualizer rotation, zoom and drag accumulator
type CameraState struct {
	AngleX, AngleY float64 // Unbounded radians
	Scale          float64 // Zoom, always within [MinScale, MaxScale]
	Velocity       physics.Inertia
	Dragging       bool
	LastPointer    Pointer
}

// NewCameraState returns the camera at rest with unit zoom
func NewCameraState() CameraState {
	return CameraState{Scale: 1}
}

// Advance moves the camera one tick under mode
// Spinning suspends drift and inertia without touching velocity, so idle resumes where it left off
func (c *CameraState) Advance(p *Params, mode Mode, multiplier float64) {
	if mode == ModeSpinning {
		// A drag cannot survive into a spin, its anchor would be stale on resume
		c.Dragging = false

		if !vmath.Finite(multiplier) {
			multiplier = 1
		}
		step := p.BaseSpeed * multiplier
		c.AngleX += step
		c.AngleY += step * p.SpinYRatio
		return
	}

	if c.Dragging {
		return
	}

	c.AngleY += p.IdleDrift
	c.Velocity.Integrate(&c.AngleX, &c.AngleY)
	c.Velocity.Decay(p.Friction)
}

// Radius returns the on-screen sphere radius before perspective
func (c *CameraState) Radius(p *Params) float64 {
	return p.Radius * c.Scale
}
