package theme

import "image/color"

// Dark palette
var (
	// Background layers (darkest to lightest)
	ColorBackground     = color.NRGBA{R: 18, G: 20, B: 24, A: 255} // #121418
	ColorSurface        = color.NRGBA{R: 28, G: 31, B: 37, A: 255} // #1C1F25
	ColorSurfaceVariant = color.NRGBA{R: 38, G: 42, B: 50, A: 255} // #262A32
	ColorOverlay        = color.NRGBA{R: 48, G: 52, B: 60, A: 255} // #30343C
	ColorPanel          = color.NRGBA{R: 22, G: 24, B: 29, A: 255} // #16181D

	// Accent
	ColorPrimary        = color.NRGBA{R: 52, G: 120, B: 246, A: 255} // #3478F6
	ColorPrimaryVariant = color.NRGBA{R: 36, G: 92, B: 196, A: 255}  // #245CC4
	ColorSecondary      = color.NRGBA{R: 110, G: 160, B: 250, A: 255}

	// Text
	ColorTextPrimary   = color.NRGBA{R: 240, G: 242, B: 245, A: 255}
	ColorTextSecondary = color.NRGBA{R: 150, G: 156, B: 166, A: 255}
	ColorTextDisabled  = color.NRGBA{R: 96, G: 100, B: 108, A: 255}
	ColorTextHint      = color.NRGBA{R: 116, G: 121, B: 130, A: 255}

	// Auto-translate phases
	ColorIdle        = color.NRGBA{R: 116, G: 121, B: 130, A: 255} // grey
	ColorDebouncing  = color.NRGBA{R: 255, G: 193, B: 7, A: 255}   // amber
	ColorTranslating = color.NRGBA{R: 33, G: 150, B: 243, A: 255}  // blue
	ColorError       = color.NRGBA{R: 244, G: 67, B: 54, A: 255}   // red
	ColorSuccess     = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	ColorListening   = color.NRGBA{R: 233, G: 30, B: 99, A: 255} // pink, dictation active

	// UI elements
	ColorDivider     = color.NRGBA{R: 50, G: 54, B: 62, A: 255}
	ColorInputBg     = color.NRGBA{R: 33, G: 36, B: 43, A: 255}
	ColorHover       = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	ColorPressed     = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	ColorFocusBorder = color.NRGBA{R: 52, G: 120, B: 246, A: 180}
	ColorDisabledBg  = color.NRGBA{R: 40, G: 43, B: 50, A: 255}
	ColorScrollbar   = color.NRGBA{R: 80, G: 84, B: 92, A: 255}
)

// Blend mixes c1 and c2; weight 0 is c1, 1 is c2.
func Blend(c1, c2 color.Color, weight float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()

	mix := func(a, b uint32) uint8 {
		return uint8(float64(a>>8)*(1-weight) + float64(b>>8)*weight)
	}
	return color.NRGBA{R: mix(r1, r2), G: mix(g1, g2), B: mix(b1, b2), A: mix(a1, a2)}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
