package globe

import (
	"sort"

	"github.com/lixenwraith/lucky-globe/vmath"
)

// Connector joins two rendered points by index into Frame.Points
type Connector struct {
	A, B  int
	Alpha float64
}

// GlowStop is one color stop of the radial background glow
type GlowStop struct {
	Offset  float64 // 0 at center, 1 at Radius
	R, G, B uint8
	Alpha   float64
}

// Glow is the background gradient drawn once per frame at the projection origin
type Glow struct {
	CenterX, CenterY float64 // Relative to the frame origin
	Radius           float64 // Gradient radius
	Extent           float64 // Filled disc radius, gradient is transparent past Radius
	Stops            []GlowStop
}

var glowStops = []GlowStop{
	{Offset: 0, R: 255, G: 215, B: 0, Alpha: 0.25},
	{Offset: 0.5, R: 255, G: 50, B: 0, Alpha: 0.1},
	{Offset: 1, R: 0, G: 0, B: 0, Alpha: 0},
}

// Frame is everything a painter needs for one tick
// Owned by the Visualizer and overwritten by the next Tick
type Frame struct {
	Tick          uint64
	Width, Height int     // Surface size in world pixels, re-read each tick
	OriginX       float64 // Surface center, screen coordinates are relative to it
	OriginY       float64
	Mode          Mode
	Scale         float64
	BaseRadius    float64 // R0, painters size the surface fit from it
	Generation    uint64  // Distribution generation, changes when the entity list does
	LabelRevision uint64  // Changes with Generation and on label-only updates

	Placeholder bool
	Points      []RenderedPoint // Entity order
	Order       []int           // Draw order into Points, ascending ProjScale
	Connectors  []Connector
	Glow        Glow

	PairsEvaluated int
}

// reset clears per-tick data while keeping slice capacity
func (f *Frame) reset() {
	f.Placeholder = false
	f.Points = f.Points[:0]
	f.Order = f.Order[:0]
	f.Connectors = f.Connectors[:0]
	f.PairsEvaluated = 0
}

// sortOrder fills Order so points with larger ProjScale paint last
func (f *Frame) sortOrder() {
	for i := range f.Points {
		f.Order = append(f.Order, i)
	}
	pts := f.Points
	sort.SliceStable(f.Order, func(a, b int) bool {
		return pts[f.Order[a]].ProjScale < pts[f.Order[b]].ProjScale
	})
}

// buildConnectors samples every stride-th point against its offset partner
// Cost is ceil(n/stride) distance checks, never n²
func (f *Frame) buildConnectors(p *Params, scale float64, mode Mode) {
	n := len(f.Points)
	if n <= 2 {
		return
	}
	stride := p.IdleStride
	if mode == ModeSpinning {
		stride = p.SpinStride
	}
	limit := p.ConnectorRange * scale

	for i := 0; i < n; i += stride {
		a := &f.Points[i]
		if a.DepthZ < p.ConnectorCullDepth {
			continue
		}
		j := (i + p.ConnectorOffset) % n
		b := &f.Points[j]
		f.PairsEvaluated++

		dist := vmath.Dist2D(a.ScreenX, a.ScreenY, b.ScreenX, b.ScreenY)
		if dist >= limit {
			continue
		}
		f.Connectors = append(f.Connectors, Connector{
			A:     i,
			B:     j,
			Alpha: (1 - dist/limit) * p.ConnectorAlpha * a.ProjScale,
		})
	}
}

func (f *Frame) buildGlow(p *Params, radius float64) {
	f.Glow = Glow{
		CenterX: p.CenterOffsetX,
		CenterY: 0,
		Radius:  radius * 0.9,
		Extent:  radius * 1.2,
		Stops:   glowStops,
	}
}
