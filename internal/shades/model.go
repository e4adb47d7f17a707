package shades

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticChroma is the chroma below which a colour counts as neutral:
// chroma drops to 0 and hue is undefined. go-colorful's XYZ route leaves
// pure greys with chroma around 1e-4.
const achromaticChroma = 5e-4

// Model is the colour math the pipeline depends on
type Model interface {
	// Parse turns a raw literal into a generic colour
	Parse(raw string) (Generic, error)
	// ToPerceptual converts a generic colour into OKLCH
	ToPerceptual(g Generic) (Color, error)
	// ToHex renders an OKLCH colour as #rrggbb, clipping out-of-gamut channels
	ToHex(c Color) string
}

// ColorfulModel implements Model on top of go-colorful
type ColorfulModel struct{}

// DefaultModel is the model used when none is injected
var DefaultModel Model = ColorfulModel{}

// Parse implements Model
func (ColorfulModel) Parse(raw string) (Generic, error) {
	return ParseLiteral(raw)
}

// ToPerceptual implements Model
func (ColorfulModel) ToPerceptual(g Generic) (Color, error) {
	var l, c, h float64
	switch g.Space {
	case SpaceSRGB:
		l, c, h = colorful.Color{R: g.V[0], G: g.V[1], B: g.V[2]}.OkLch()
	case SpaceOkLab:
		l, c, h = colorful.OkLabToOkLch(g.V[0], g.V[1], g.V[2])
	case SpaceOkLch:
		l, c, h = g.V[0], g.V[1], normalizeHue(g.V[2])
	case SpaceLab, SpaceLch, SpaceLinearSRGB, SpaceDisplayP3, SpaceXYZD65, SpaceXYZD50:
		l, c, h = colorful.XyzToOkLch(toXYZ(g))
	default:
		return Color{}, fmt.Errorf("%w: unknown space %d", ErrUnconvertible, g.Space)
	}

	if !finite(l) || !finite(c) || !finite(h) {
		return Color{}, fmt.Errorf("%w: non-finite result", ErrUnconvertible)
	}

	col := Color{L: l, C: c, H: h}
	switch {
	case g.HueMissing:
		// An explicit none keeps the written chroma
		col.H = 0
		col.NoHue = true
	case c < achromaticChroma:
		col.C = 0
		col.H = 0
		col.NoHue = true
	}
	return col, nil
}

// ToHex implements Model
func (ColorfulModel) ToHex(c Color) string {
	h := c.H
	if c.NoHue {
		h = 0
	}
	return colorful.OkLch(c.L, c.C, h).Clamped().Hex()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// normalizeHue wraps degrees into [0,360)
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
