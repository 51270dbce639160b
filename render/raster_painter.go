package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/lucky-globe/globe"
)

const (
	dotRadius      = 4.0 // World pixels at projScale 1
	circleSegments = 24
	linkWidth      = 1.0
)

// RasterPainter draws a globe Frame into an RGBA image the size of the frame surface
type RasterPainter struct {
	Face font.Face

	img  *image.RGBA
	z    vector.Rasterizer
	ramp GlowRamp
}

// NewRasterPainter creates a painter using the 7x13 bitmap face
func NewRasterPainter() *RasterPainter {
	return &RasterPainter{Face: basicfont.Face7x13}
}

// Paint renders f and returns the painter's image, reused by the next call
func (p *RasterPainter) Paint(f *globe.Frame) *image.RGBA {
	w, h := max(f.Width, 1), max(f.Height, 1)
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		p.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	img := p.img
	draw.Draw(img, img.Bounds(), image.NewUniform(RgbBackground.NRGBA(1)), image.Point{}, draw.Src)

	if f.Placeholder {
		p.drawText(int(f.OriginX)-len(PlaceholderText)*7/2, int(f.OriginY), PlaceholderText, RgbPlaceholder, 1)
		return img
	}

	fit := FitScale(f)
	p.drawGlow(f, fit)

	for _, c := range f.Connectors {
		a := &f.Points[c.A]
		b := &f.Points[c.B]
		ax, ay := toPixel(f, fit, a.ScreenX, a.ScreenY)
		bx, by := toPixel(f, fit, b.ScreenX, b.ScreenY)
		p.fillLine(ax, ay, bx, by, linkWidth, RgbConnector.NRGBA(c.Alpha))
	}

	dot := DotColor(f.Mode)
	for _, idx := range f.Order {
		rp := &f.Points[idx]
		x, y := toPixel(f, fit, rp.ScreenX, rp.ScreenY)
		r := dotRadius * rp.ProjScale * fit
		if rp.BlurPx > 0 {
			p.fillCircle(x, y, r+rp.BlurPx*fit, dot.NRGBA(rp.Opacity*0.25))
		}
		p.fillCircle(x, y, r, dot.NRGBA(rp.Opacity))

		if rp.Entity == nil {
			continue
		}
		tx := int(x + r + 4)
		ty := int(y + 4)
		p.drawText(tx, ty, rp.Entity.DisplayName, LabelColor(rp.Color), rp.Opacity)
		if f.Mode == globe.ModeIdle && rp.Color == globe.ColorFront {
			p.drawText(tx, ty+13, rp.Entity.GroupLabel, RgbGroupLabel, rp.Opacity*0.8)
		}
	}
	return img
}

func toPixel(f *globe.Frame, fit, sx, sy float64) (float64, float64) {
	return f.OriginX + sx*fit, f.OriginY + sy*fit
}

// drawGlow screens the gradient over the background within the glow extent
func (p *RasterPainter) drawGlow(f *globe.Frame, fit float64) {
	g := &f.Glow
	p.ramp.Build(g)
	cx, cy := toPixel(f, fit, g.CenterX, g.CenterY)
	ext := g.Extent * fit
	bounds := image.Rect(int(cx-ext), int(cy-ext), int(cx+ext)+1, int(cy+ext)+1).Intersect(p.img.Bounds())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / fit
			c, a := p.ramp.At(d)
			if a <= 0 {
				continue
			}
			i := p.img.PixOffset(x, y)
			px := p.img.Pix[i : i+3 : i+3]
			out := Screen(RGB{px[0], px[1], px[2]}, c, a)
			px[0], px[1], px[2] = out.R, out.G, out.B
		}
	}
}

// fill rasterizes a path into the visible part of its bounding box
// The mask is anchored at clip.Min, so build receives that as the path offset
func (p *RasterPainter) fill(minX, minY, maxX, maxY float64, c color.NRGBA, build func(z *vector.Rasterizer, ox, oy float32)) {
	if c.A == 0 {
		return
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	clip := box.Intersect(p.img.Bounds())
	if clip.Empty() {
		return
	}
	p.z.Reset(clip.Dx(), clip.Dy())
	build(&p.z, float32(clip.Min.X), float32(clip.Min.Y))
	p.z.Draw(p.img, clip, image.NewUniform(c), image.Point{})
}

func (p *RasterPainter) fillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	p.fill(cx-r, cy-r, cx+r, cy+r, c, func(z *vector.Rasterizer, ox, oy float32) {
		for i := 0; i <= circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			x := float32(cx+r*math.Cos(a)) - ox
			y := float32(cy+r*math.Sin(a)) - oy
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	})
}

// fillLine draws a segment as a quad of the given width
func (p *RasterPainter) fillLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	minX := math.Min(x0, x1) - width
	minY := math.Min(y0, y1) - width
	maxX := math.Max(x0, x1) + width
	maxY := math.Max(y0, y1) + width
	p.fill(minX, minY, maxX, maxY, c, func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(float32(x0+nx)-ox, float32(y0+ny)-oy)
		z.LineTo(float32(x1+nx)-ox, float32(y1+ny)-oy)
		z.LineTo(float32(x1-nx)-ox, float32(y1-ny)-oy)
		z.LineTo(float32(x0-nx)-ox, float32(y0-ny)-oy)
		z.ClosePath()
	})
}

func (p *RasterPainter) drawText(x, y int, s string, c RGB, opacity float64) {
	if s == "" || opacity <= 0 {
		return
	}
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c.NRGBA(opacity)),
		Face: p.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Downsample scales a supersampled render to w×h with CatmullRom filtering
// The source is opaque so no premultiply pass is needed
func Downsample(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
