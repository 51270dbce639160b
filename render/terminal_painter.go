package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/lucky-globe/globe"
)

// Virtual pixels per terminal cell, a cell is roughly twice as tall as wide
const (
	CellWidth  = 8
	CellHeight = 16
)

const maxLabelRunes = 18

// Point glyphs from sharp to blurred
const (
	glyphSharp   = '●'
	glyphSoft    = '•'
	glyphBlurred = '∙'
	glyphLink    = '·'
)

// TerminalPainter composites a globe Frame into a RenderBuffer
type TerminalPainter struct {
	// Glow paints the background gradient, off on 256-color terminals
	Glow bool
	// Status is appended to the bottom status line
	Status string

	ramp       GlowRamp
	labelRev   uint64
	labelValid bool
	names      []string
	groups     []string
}

// NewTerminalPainter creates a painter with the glow enabled
func NewTerminalPainter() *TerminalPainter {
	return &TerminalPainter{Glow: true}
}

// SurfaceSize returns the world pixel size a frame should be ticked at for a cols×rows buffer
func SurfaceSize(cols, rows int) (int, int) {
	return cols * CellWidth, rows * CellHeight
}

// Paint clears buf and draws f into it
func (p *TerminalPainter) Paint(buf *RenderBuffer, f *globe.Frame) {
	buf.Clear()
	cols, rows := buf.Size()
	if cols == 0 || rows == 0 {
		return
	}

	if f.Placeholder {
		buf.TextCentered(cols/2, rows/2, PlaceholderText, RgbPlaceholder, true)
		p.drawStatus(buf, f)
		return
	}

	p.syncLabels(f)
	fit := FitScale(f)

	if p.Glow {
		p.drawGlow(buf, f, fit)
	}
	p.drawConnectors(buf, f, fit)
	p.drawPoints(buf, f, fit)
	p.drawStatus(buf, f)
}

// toCell maps frame-relative world coordinates to a buffer cell
func toCell(f *globe.Frame, fit, sx, sy float64) (int, int) {
	px := f.OriginX + sx*fit
	py := f.OriginY + sy*fit
	return int(math.Floor(px / CellWidth)), int(math.Floor(py / CellHeight))
}

// syncLabels rebuilds truncated label text only when the entity list or its labels change
func (p *TerminalPainter) syncLabels(f *globe.Frame) {
	if p.labelValid && p.labelRev == f.LabelRevision && len(p.names) == len(f.Points) {
		return
	}
	p.names = p.names[:0]
	p.groups = p.groups[:0]
	for i := range f.Points {
		e := f.Points[i].Entity
		if e == nil {
			p.names = append(p.names, "")
			p.groups = append(p.groups, "")
			continue
		}
		p.names = append(p.names, truncate(e.DisplayName, maxLabelRunes))
		p.groups = append(p.groups, truncate(e.GroupLabel, maxLabelRunes))
	}
	p.labelRev = f.LabelRevision
	p.labelValid = true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (p *TerminalPainter) drawGlow(buf *RenderBuffer, f *globe.Frame, fit float64) {
	g := &f.Glow
	p.ramp.Build(g)
	cols, rows := buf.Size()
	cx := f.OriginX + g.CenterX*fit
	cy := f.OriginY + g.CenterY*fit

	for y := 0; y < rows; y++ {
		py := (float64(y)+0.5)*CellHeight - cy
		for x := 0; x < cols; x++ {
			px := (float64(x)+0.5)*CellWidth - cx
			d := math.Hypot(px, py) / fit
			c, a := p.ramp.At(d)
			if a <= 0 {
				continue
			}
			buf.Set(x, y, 0, RGB{}, c, BlendScreenBg, a)
		}
	}
}

func (p *TerminalPainter) drawConnectors(buf *RenderBuffer, f *globe.Frame, fit float64) {
	for _, c := range f.Connectors {
		a := &f.Points[c.A]
		b := &f.Points[c.B]
		x0, y0 := toCell(f, fit, a.ScreenX, a.ScreenY)
		x1, y1 := toCell(f, fit, b.ScreenX, b.ScreenY)
		traceLine(buf, x0, y0, x1, y1, c.Alpha)
	}
}

// traceLine draws a Bresenham line of link glyphs, endpoints excluded
func traceLine(buf *RenderBuffer, x0, y0, x1, y1 int, alpha float64) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	steps := max(absDx, absDy)
	if steps < 2 {
		return
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	for step := 0; step <= steps; step++ {
		if step > 0 && step < steps {
			under := buf.Get(x, y)
			if under.Rune == 0 || under.Rune == glyphLink {
				buf.Set(x, y, glyphLink, RgbConnector, RGB{}, BlendAlphaFg, alpha)
			}
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

func glyphFor(blur float64) rune {
	switch {
	case blur < 1:
		return glyphSharp
	case blur < 2.5:
		return glyphSoft
	default:
		return glyphBlurred
	}
}

func (p *TerminalPainter) drawPoints(buf *RenderBuffer, f *globe.Frame, fit float64) {
	dot := DotColor(f.Mode)
	for _, idx := range f.Order {
		rp := &f.Points[idx]
		x, y := toCell(f, fit, rp.ScreenX, rp.ScreenY)
		if !buf.inBounds(x, y) {
			continue
		}
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, glyphFor(rp.BlurPx), Blend(bg, dot, rp.Opacity), false)

		front := rp.Color == globe.ColorFront
		label := LabelColor(rp.Color)
		p.drawLabel(buf, x+2, y, p.names[idx], label, rp.Opacity, front)

		if f.Mode == globe.ModeIdle && front {
			p.drawLabel(buf, x+2, y+1, p.groups[idx], RgbGroupLabel, rp.Opacity*0.8, false)
		}
	}
}

// drawLabel fades text toward the cell background by opacity
func (p *TerminalPainter) drawLabel(buf *RenderBuffer, x, y int, s string, c RGB, opacity float64, bold bool) {
	if s == "" {
		return
	}
	for _, r := range s {
		if buf.inBounds(x, y) {
			bg := buf.Get(x, y).Bg
			buf.SetFgOnly(x, y, r, Blend(bg, c, opacity), bold)
		}
		x++
	}
}

func (p *TerminalPainter) drawStatus(buf *RenderBuffer, f *globe.Frame) {
	_, rows := buf.Size()
	line := fmt.Sprintf(" %d entities | %s | zoom %.2fx", len(f.Points), f.Mode, f.Scale)
	if p.Status != "" {
		line += " | " + p.Status
	}
	buf.Text(0, rows-1, line, RgbStatus, false)
}
