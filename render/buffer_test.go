package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferClear(t *testing.T) {
	buf := NewRenderBuffer(7, 3)
	buf.Set(2, 1, 'x', RGB{255, 0, 0}, RGB{0, 255, 0}, BlendReplace, 1)
	buf.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			c := buf.Get(x, y)
			if c.Rune != 0 || c.Bg != RgbBackground {
				t.Fatalf("Expected cleared cell at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}

func TestRenderBufferBlendModes(t *testing.T) {
	tests := []struct {
		name   string
		mode   BlendMode
		wantFg RGB
		wantBg RGB
	}{
		{"Replace both", BlendReplace, RGB{200, 0, 0}, RGB{0, 200, 0}},
		{"Fg only", BlendFgOnly, RGB{200, 0, 0}, RGB{10, 10, 10}},
		{"Screen bg keeps fg", BlendScreenBg, RGB{10, 10, 10}, Screen(RGB{10, 10, 10}, RGB{0, 200, 0}, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewRenderBuffer(1, 1)
			buf.Set(0, 0, 0, RGB{10, 10, 10}, RGB{10, 10, 10}, BlendReplace, 1)
			buf.Set(0, 0, 0, RGB{200, 0, 0}, RGB{0, 200, 0}, tt.mode, 1)
			c := buf.Get(0, 0)
			if c.Fg != tt.wantFg {
				t.Errorf("Expected fg %v, got %v", tt.wantFg, c.Fg)
			}
			if c.Bg != tt.wantBg {
				t.Errorf("Expected bg %v, got %v", tt.wantBg, c.Bg)
			}
		})
	}
}

func TestRenderBufferOutOfBounds(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.Set(-1, 0, 'x', RGB{}, RGB{}, BlendReplace, 1)
	buf.SetFgOnly(5, 5, 'x', RGB{}, false)
	buf.Text(1, 1, "abc", RGB{1, 1, 1}, false)

	if got := buf.Get(1, 1).Rune; got != 'a' {
		t.Errorf("Expected 'a', got %q", got)
	}
	if got := buf.Get(9, 9); got != (Cell{}) {
		t.Errorf("Expected zero cell, got %+v", got)
	}
}

func TestRenderBufferResize(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	buf.Resize(4, 3)
	if w, h := buf.Size(); w != 4 || h != 3 {
		t.Errorf("Expected 4x3, got %dx%d", w, h)
	}
	buf.Resize(-1, 5)
	if w, _ := buf.Size(); w != 0 {
		t.Errorf("Expected width 0, got %d", w)
	}
}

func TestRenderBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	buf := NewRenderBuffer(10, 2)
	buf.Text(0, 0, "globe", RGB{255, 255, 255}, true)
	buf.Flush(screen)

	for i, want := range "globe" {
		r, _, style, _ := screen.GetContent(i, 0)
		if r != want {
			t.Errorf("Expected %q at column %d, got %q", want, i, r)
		}
		if fg, _, _ := style.Decompose(); fg != RGBToTcell(RGB{255, 255, 255}) {
			t.Errorf("Expected white fg at column %d, got %v", i, fg)
		}
	}
	if r, _, _, _ := screen.GetContent(7, 1); r != ' ' {
		t.Errorf("Expected blank cell, got %q", r)
	}
}
