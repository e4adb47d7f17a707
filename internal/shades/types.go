package shades

import "errors"

// Errors reported by the colour pipeline
var (
	// ErrUnparseable means the raw literal is not a colour the parser recognizes
	ErrUnparseable = errors.New("unrecognized color literal")
	// ErrUnconvertible means the parsed colour has no finite OKLCH representation
	ErrUnconvertible = errors.New("color cannot be converted to oklch")
	// ErrInvalidStops means a stops list breaks the descending [0,100] contract
	ErrInvalidStops = errors.New("invalid lightness stops")
)

// Space identifies which model a Generic colour's components are in
type Space int

// Colour spaces a literal can be parsed into
const (
	SpaceSRGB       Space = iota // R, G, B in 0..1 (not clamped)
	SpaceOkLab                   // L, a, b
	SpaceOkLch                   // L, C, H (degrees)
	SpaceLab                     // CIE L (0..100), a, b; D50
	SpaceLch                     // CIE L (0..100), C, H (degrees); D50
	SpaceLinearSRGB              // linear-light R, G, B
	SpaceDisplayP3               // gamma-encoded P3 R, G, B
	SpaceXYZD65                  // X, Y, Z
	SpaceXYZD50                  // X, Y, Z
)

// Generic is a parsed colour literal before perceptual conversion
type Generic struct {
	Space      Space
	V          [3]float64
	HueMissing bool // hue was written as "none"
}

// Color is a colour in the OKLCH model. It is never mutated after creation;
// the ladder copies C and H and overrides L.
type Color struct {
	L     float64 // 0..1
	C     float64 // >= 0
	H     float64 // degrees in [0,360), meaningless when NoHue is set
	NoHue bool    // achromatic: hue undefined
}

// Step is one rung of a seed's ladder
type Step struct {
	Percent int
	Color   Color
}

// Pair references two ladder steps as a light/dark declaration
type Pair struct {
	High int // lighter stop
	Low  int // darker stop
}

// Format selects how step values are rendered
type Format string

// Output formats
const (
	FormatHex   Format = "hex"
	FormatOkLch Format = "oklch"
)
