package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lucky-globe/globe"
)

// GlowSample returns the glow color and opacity at distance d from the glow center
// Stops interpolate in Lab space, a fully transparent stop borrows its neighbor's hue
func GlowSample(g *globe.Glow, d float64) (RGB, float64) {
	if len(g.Stops) == 0 || g.Radius <= 0 || d > g.Extent {
		return RGB{}, 0
	}
	t := d / g.Radius
	stops := g.Stops
	if t <= stops[0].Offset {
		s := stops[0]
		return RGB{s.R, s.G, s.B}, s.Alpha
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return RGB{last.R, last.G, last.B}, last.Alpha
	}

	for i := 1; i < len(stops); i++ {
		b := stops[i]
		if t > b.Offset {
			continue
		}
		a := stops[i-1]
		span := b.Offset - a.Offset
		if span <= 0 {
			return RGB{b.R, b.G, b.B}, b.Alpha
		}
		f := (t - a.Offset) / span

		ca := stopColor(a)
		cb := stopColor(b)
		if a.Alpha == 0 {
			ca = cb
		}
		if b.Alpha == 0 {
			cb = ca
		}
		r, gg, bb := ca.BlendLab(cb, f).Clamped().RGB255()
		return RGB{r, gg, bb}, a.Alpha + (b.Alpha-a.Alpha)*f
	}
	return RGB{}, 0
}

func stopColor(s globe.GlowStop) colorful.Color {
	return colorful.Color{
		R: float64(s.R) / 255,
		G: float64(s.G) / 255,
		B: float64(s.B) / 255,
	}
}

const rampSize = 256

// GlowRamp is a per-frame lookup of GlowSample over [0, Extent]
type GlowRamp struct {
	colors [rampSize]RGB
	alphas [rampSize]float64
	extent float64
}

// Build resamples g into the ramp
func (r *GlowRamp) Build(g *globe.Glow) {
	r.extent = g.Extent
	for i := 0; i < rampSize; i++ {
		d := g.Extent * float64(i) / (rampSize - 1)
		r.colors[i], r.alphas[i] = GlowSample(g, d)
	}
}

// At returns the nearest ramp entry for distance d
func (r *GlowRamp) At(d float64) (RGB, float64) {
	if r.extent <= 0 || d < 0 || d > r.extent {
		return RGB{}, 0
	}
	i := int(d/r.extent*(rampSize-1) + 0.5)
	return r.colors[i], r.alphas[i]
}
