package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/lucky-globe/globe"
)

func testGlow() *globe.Glow {
	v := globe.NewVisualizer(&globe.StaticInputs{List: []globe.Entity{{ID: "a"}}, Multiplier: 1}, globe.DefaultParams())
	f := v.Tick(800, 600)
	g := f.Glow
	return &g
}

func TestGlowSampleStops(t *testing.T) {
	g := testGlow()

	c, a := GlowSample(g, 0)
	if c != (RGB{255, 215, 0}) || math.Abs(a-0.25) > 1e-9 {
		t.Errorf("Expected gold at 0.25 at the center, got %v at %f", c, a)
	}

	_, a = GlowSample(g, g.Radius*0.5)
	if math.Abs(a-0.1) > 1e-9 {
		t.Errorf("Expected alpha 0.1 at the middle stop, got %f", a)
	}

	_, a = GlowSample(g, g.Radius)
	if a != 0 {
		t.Errorf("Expected transparent at the gradient radius, got %f", a)
	}

	_, a = GlowSample(g, g.Extent+1)
	if a != 0 {
		t.Errorf("Expected nothing past the extent, got %f", a)
	}
}

func TestGlowSampleMonotoneAlpha(t *testing.T) {
	g := testGlow()
	prev := math.Inf(1)
	for i := 0; i <= 100; i++ {
		_, a := GlowSample(g, g.Radius*float64(i)/100)
		if a > prev+1e-12 {
			t.Fatalf("Expected alpha to fall with distance, rose to %f at step %d", a, i)
		}
		prev = a
	}
}

func TestGlowSampleFadeKeepsHue(t *testing.T) {
	g := testGlow()
	// Between the orange stop and the transparent stop the hue must not drift to black
	c, _ := GlowSample(g, g.Radius*0.9)
	if c.R < 200 {
		t.Errorf("Expected orange-red hue near the edge, got %v", c)
	}
}

func TestGlowSampleEmpty(t *testing.T) {
	if _, a := GlowSample(&globe.Glow{}, 0); a != 0 {
		t.Errorf("Expected zero alpha for empty glow, got %f", a)
	}
}
