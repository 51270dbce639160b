package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opScreen  uint8 = 0x05
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)

	BlendAlphaFg  = BlendMode(opAlpha | flagFg)   // Fade glyph over what is beneath, keep Bg
	BlendScreenBg = BlendMode(opScreen | flagBg)  // Glow, keep glyph
	BlendFgOnly   = BlendMode(opReplace | flagFg) // Replace Fg, Keep Bg
)

// apply runs op on one channel pair
func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opReplace:
		return src
	case opAlpha:
		return Blend(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	}
	return dst
}
