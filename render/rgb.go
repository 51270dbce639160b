package render

import "image/color"

// RGB is an 8-bit colour shared by the cell buffer and the raster painter
type RGB struct {
	R, G, B uint8
}

func clamp8(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v <= 0:
		return 0
	}
	return uint8(v)
}

// mix applies f channel-wise, f works in 0-255 floats
func mix(a, b RGB, f func(x, y float64) float64) RGB {
	return RGB{
		R: clamp8(f(float64(a.R), float64(b.R))),
		G: clamp8(f(float64(a.G), float64(b.G))),
		B: clamp8(f(float64(a.B), float64(b.B))),
	}
}

// Blend is src over dst at alpha
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha >= 1 {
		return src
	}
	if alpha <= 0 {
		return dst
	}
	return mix(dst, src, func(d, s float64) float64 {
		return d + (s-d)*alpha
	})
}

// Screen lightens dst by src, 1-(1-d)(1-s), faded in by alpha
// Used for the glow so overlapping light never darkens
func Screen(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	lit := mix(dst, src, func(d, s float64) float64 {
		return 255 - (255-d)*(255-s)/255
	})
	return Blend(dst, lit, alpha)
}

// NRGBA converts to a non-premultiplied color with the given opacity
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp8(alpha*255 + 0.5)}
}
