package theme

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Derived holds the colors computed from a base palette.
type Derived struct {
	Card            string
	Border          string
	MainAccent      string
	SecondaryAccent string
}

// Theme is a base palette plus its derived colors. Built once per base
// (or per custom template) and cached by the service.
type Theme struct {
	BaseTheme
	Derived
}

// Lightness deltas for the derivation transform. Light themes move surfaces
// toward dark (negative direction), dark themes toward light.
const (
	cardShift    = 0.06
	borderShift  = 0.14
	accentShift  = 0.18
	accentChroma = 0.04
)

// DeriveColors computes card, border, and accent colors from a base palette.
// The transform is a fixed lightness/chroma adjustment in HCL space, so the
// same base and light flag always yield identical output.
func DeriveColors(base BaseTheme, light bool) Derived {
	dir := 1.0
	if light {
		dir = -1.0
	}
	return Derived{
		Card:            shiftHcl(base.Background, dir*cardShift, 0),
		Border:          shiftHcl(base.Background, dir*borderShift, 0),
		MainAccent:      shiftHcl(base.Main, dir*accentShift, accentChroma),
		SecondaryAccent: shiftHcl(base.Secondary, dir*accentShift, accentChroma),
	}
}

// New builds the full Theme for a base palette.
func New(base BaseTheme) Theme {
	return Theme{BaseTheme: base, Derived: DeriveColors(base, base.Light)}
}

// shiftHcl adjusts a hex color's lightness and chroma in HCL space and
// returns the clamped hex result. Malformed input passes through unchanged;
// base palettes are build-time constants, so this only guards custom templates.
func shiftHcl(hex string, dl, dc float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, ch, l := c.Hcl()
	l = clamp01(l + dl)
	ch = ch + dc
	if ch < 0 {
		ch = 0
	}
	return colorful.Hcl(h, ch, l).Clamped().Hex()
}

// textColors picks readable foreground colors for a background: near-black on
// light surfaces, near-white on dark ones, with the muted shade blended
// partway toward the background.
func textColors(background string, light bool) (text, muted string) {
	fg := "#f2f2f2"
	if light {
		fg = "#1c1c1c"
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return fg, fg
	}
	f, _ := colorful.Hex(fg)
	return fg, f.BlendHcl(bg, 0.45).Clamped().Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
