package globe

// Params holds the tunable constants of one visualizer
// Values are in world pixels and radians per tick unless noted
type Params struct {
	// Geometry
	Radius              float64 // Base sphere radius R0
	Perspective         float64 // Camera distance D
	CenterOffsetX       float64 // Horizontal shift of the projection origin
	MinDepthDenominator float64 // Floor for D+z2 before the perspective divide

	// Rotation
	IdleDrift  float64 // AngleY increment per idle tick
	Friction   float64 // Velocity multiplier per idle tick
	BaseSpeed  float64 // Spin increment per tick at multiplier 1
	SpinYRatio float64 // AngleY share of the spin increment

	// Interaction
	DragSensitivity  float64 // Radians per pointer pixel
	WheelSensitivity float64 // Scale per wheel delta unit
	MinScale         float64
	MaxScale         float64

	// Visuals
	OpacityFloor float64
	BlurMax      float64 // Blur at projScale 0
	SpinBlur     float64
	FrontDepth   float64 // z2 above this uses the front palette

	// Connectors
	ConnectorOffset    int     // Partner index offset
	ConnectorCullDepth float64 // Sampled points behind this depth are skipped
	ConnectorRange     float64 // Max screen distance at scale 1
	ConnectorAlpha     float64
	IdleStride         int
	SpinStride         int
}

// DefaultParams returns the reference tuning
func DefaultParams() Params {
	return Params{
		Radius:              400,
		Perspective:         1000,
		CenterOffsetX:       -50,
		MinDepthDenominator: 1,

		IdleDrift:  0.001,
		Friction:   0.95,
		BaseSpeed:  0.002,
		SpinYRatio: 0.4,

		DragSensitivity:  0.005,
		WheelSensitivity: 0.001,
		MinScale:         0.5,
		MaxScale:         2.0,

		OpacityFloor: 0.2,
		BlurMax:      4,
		SpinBlur:     0.5,
		FrontDepth:   -50,

		ConnectorOffset:    7,
		ConnectorCullDepth: -100,
		ConnectorRange:     180,
		ConnectorAlpha:     0.8,
		IdleStride:         2,
		SpinStride:         1,
	}
}

// normalized fills zero or invalid fields from defaults
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.Radius <= 0 {
		p.Radius = d.Radius
	}
	if p.Perspective <= 0 {
		p.Perspective = d.Perspective
	}
	if p.MinDepthDenominator <= 0 {
		p.MinDepthDenominator = d.MinDepthDenominator
	}
	if p.Friction <= 0 || p.Friction >= 1 {
		p.Friction = d.Friction
	}
	if p.MinScale <= 0 {
		p.MinScale = d.MinScale
	}
	if p.MaxScale < p.MinScale {
		p.MaxScale = d.MaxScale
	}
	if p.IdleStride < 1 {
		p.IdleStride = d.IdleStride
	}
	if p.SpinStride < 1 {
		p.SpinStride = d.SpinStride
	}
	if p.ConnectorOffset < 1 {
		p.ConnectorOffset = d.ConnectorOffset
	}
	return p
}
