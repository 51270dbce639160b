package render

import (
	"testing"

	"github.com/lixenwraith/lucky-globe/globe"
)

func TestRasterPainterPlaceholder(t *testing.T) {
	v := globe.NewVisualizer(&globe.StaticInputs{Multiplier: 1}, globe.DefaultParams())
	f := v.Tick(400, 300)
	img := NewRasterPainter().Paint(f)

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("Expected 400x300, got %v", b)
	}
	bg := RgbBackground.NRGBA(1)
	lit := 0
	for y := 140; y < 160; y++ {
		for x := 100; x < 300; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected placeholder text pixels near the center")
	}
}

func TestRasterPainterDrawsGlowAndPoints(t *testing.T) {
	v := globe.NewVisualizer(&globe.StaticInputs{List: makeEntities(60), Multiplier: 1}, globe.DefaultParams())
	f := v.Tick(1280, 960)
	img := NewRasterPainter().Paint(f)

	corner := img.RGBAAt(0, 0)
	bg := RgbBackground
	if corner.R != bg.R || corner.G != bg.G || corner.B != bg.B {
		t.Errorf("Expected untouched corner, got %v", corner)
	}

	fit := FitScale(f)
	cx, cy := toPixel(f, fit, f.Glow.CenterX, f.Glow.CenterY)
	center := img.RGBAAt(int(cx), int(cy))
	if center.R <= bg.R {
		t.Errorf("Expected glow to lighten the center, got %v", center)
	}

	// The most opaque point must show up as a bright pixel at its center
	best := &f.Points[0]
	for i := range f.Points {
		if f.Points[i].DepthZ > best.DepthZ {
			best = &f.Points[i]
		}
	}
	px, py := toPixel(f, fit, best.ScreenX, best.ScreenY)
	c := img.RGBAAt(int(px), int(py))
	if c.R < 128 || c.G < 128 {
		t.Errorf("Expected a bright dot at (%d,%d), got %v", int(px), int(py), c)
	}
}

func TestRasterPainterReusesImage(t *testing.T) {
	v := globe.NewVisualizer(&globe.StaticInputs{List: makeEntities(5), Multiplier: 1}, globe.DefaultParams())
	p := NewRasterPainter()
	a := p.Paint(v.Tick(200, 200))
	b := p.Paint(v.Tick(200, 200))
	if a != b {
		t.Error("Expected the image to be reused at the same size")
	}
	c := p.Paint(v.Tick(300, 200))
	if c == a {
		t.Error("Expected a new image after a resize")
	}
}

func TestDownsample(t *testing.T) {
	v := globe.NewVisualizer(&globe.StaticInputs{List: makeEntities(5), Multiplier: 1}, globe.DefaultParams())
	img := NewRasterPainter().Paint(v.Tick(400, 400))

	small := Downsample(img, 200, 200)
	if b := small.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("Expected 200x200, got %v", b)
	}
	if same := Downsample(img, 400, 400); same != img {
		t.Error("Expected no copy at the same size")
	}
}
