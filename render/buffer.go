package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// RenderBuffer is a cell compositor flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{bg: RgbBackground}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBackground changes the color Clear fills with
func (b *RenderBuffer) SetBackground(bg RGB) {
	b.bg = bg
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell with the specified blend mode
// A zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Bold = false
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune and foreground while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
}

// Text writes s left to right from (x, y), clipped at the buffer edge
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, bold bool) {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, bold)
		x++
	}
}

// TextCentered writes s centered on column cx
func (b *RenderBuffer) TextCentered(cx, y int, s string, fg RGB, bold bool) {
	b.Text(cx-len([]rune(s))/2, y, s, fg, bold)
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Flush writes the buffer to screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := &row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(c.Fg)).
				Background(RGBToTcell(c.Bg)).
				Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
