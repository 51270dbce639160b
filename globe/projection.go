package globe

import (
	"math"

	"github.com/lixenwraith/lucky-globe/vmath"
)

// ColorVariant selects the label palette by hemisphere
type ColorVariant uint8

const (
	ColorFront ColorVariant = iota
	ColorBack
)

// RenderedPoint is one projected entity, rebuilt every tick
type RenderedPoint struct {
	ScreenX, ScreenY float64 // Relative to the frame origin
	DepthZ           float64 // Post-rotation z2, larger reads as front for opacity and color; stacking follows ProjScale
	ProjScale        float64
	Opacity          float64
	BlurPx           float64
	Color            ColorVariant
	ZIndex           int
	Entity           *Entity
}

// Projector holds the per-frame trig and zoom so each point costs a few multiplies
type Projector struct {
	params *Params
	yaw    vmath.Rotation
	pitch  vmath.Rotation
	scale  float64
	radius float64
	mode   Mode
}

// NewProjector captures the camera for one frame
func NewProjector(p *Params, cam *CameraState, mode Mode) Projector {
	return Projector{
		params: p,
		yaw:    vmath.NewRotation(cam.AngleY),
		pitch:  vmath.NewRotation(cam.AngleX),
		scale:  cam.Scale,
		radius: cam.Radius(p),
		mode:   mode,
	}
}

// Project applies yaw, then pitch, then the perspective divide
// The order is fixed, swapping it changes how drags feel at the poles
func (pr *Projector) Project(sp *SpherePoint) RenderedPoint {
	base := vmath.Vec3F{X: sp.BaseX * pr.scale, Y: sp.BaseY * pr.scale, Z: sp.BaseZ * pr.scale}
	v := pr.pitch.Pitch(pr.yaw.Yaw(base))

	denom := pr.params.Perspective + v.Z
	if denom < pr.params.MinDepthDenominator {
		denom = pr.params.MinDepthDenominator
	}
	ps := pr.params.Perspective / denom

	rp := RenderedPoint{
		ScreenX:   v.X*ps + pr.params.CenterOffsetX,
		ScreenY:   v.Y * ps,
		DepthZ:    v.Z,
		ProjScale: ps,
		ZIndex:    int(math.Floor(ps * 100)),
		Entity:    sp.Entity,
	}

	rp.Opacity = Opacity(v.Z, pr.radius, pr.params.OpacityFloor)
	rp.BlurPx = math.Max(0, (1-ps)*pr.params.BlurMax)
	if pr.mode == ModeSpinning {
		// Spin favors legibility: two opacity levels, near-constant blur
		if rp.Opacity > 0.4 {
			rp.Opacity = 1
		} else {
			rp.Opacity = 0.5
		}
		rp.BlurPx = pr.params.SpinBlur
	}

	rp.Color = ColorBack
	if v.Z > pr.params.FrontDepth {
		rp.Color = ColorFront
	}
	return rp
}

// Opacity maps depth to [floor, 1], rising as z2 nears the viewer
func Opacity(z2, radius, floor float64) float64 {
	if radius <= 0 {
		return 1
	}
	o := (z2 + radius) / (2 * radius)
	return vmath.Clamp(o, floor, 1)
}
