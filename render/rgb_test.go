package render

import "testing"

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"Zero alpha keeps dst", 0, dst},
		{"Full alpha takes src", 1, src},
		{"Half alpha", 0.5, RGB{100, 50, 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(dst, src, tt.alpha); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScreenOnlyLightens(t *testing.T) {
	base := RGB{40, 80, 120}
	for _, src := range []RGB{{0, 0, 0}, {255, 215, 0}, {255, 50, 0}, {10, 10, 10}} {
		got := Screen(base, src, 1)
		if got.R < base.R || got.G < base.G || got.B < base.B {
			t.Errorf("Screen of %v over %v darkened to %v", src, base, got)
		}
	}
	if got := Screen(base, RGB{255, 255, 255}, 1); got != (RGB{255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestNRGBAAlpha(t *testing.T) {
	c := RGB{1, 2, 3}.NRGBA(0.5)
	if c.A != 128 || c.R != 1 || c.G != 2 || c.B != 3 {
		t.Errorf("Expected {1 2 3 128}, got %v", c)
	}
	if (RGB{}).NRGBA(2).A != 255 {
		t.Error("Expected alpha clamped to 255")
	}
}
