package shades

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
)

// Values that 100% maps to for chroma and a/b axes
const (
	okChromaPercent  = 0.4 // oklab(), oklch()
	labAxisPercent   = 125 // lab() a and b
	lchChromaPercent = 150 // lch() chroma
)

// predefinedSpaces are the color() spaces the model can convert
var predefinedSpaces = map[string]Space{
	"srgb":        SpaceSRGB,
	"srgb-linear": SpaceLinearSRGB,
	"display-p3":  SpaceDisplayP3,
	"xyz":         SpaceXYZD65,
	"xyz-d65":     SpaceXYZD65,
	"xyz-d50":     SpaceXYZD50,
}

// componentKind classifies one argument of a colour function
type componentKind int

const (
	kindNumber componentKind = iota
	kindPercent
	kindDimension
	kindNone
)

// component is one argument of a colour function
type component struct {
	kind  componentKind
	value float64
	unit  string // lowercased, dimensions only
}

// ParseLiteral parses a CSS colour literal into a Generic colour.
//
// Supported: hex (#rgb, #rgba, #rrggbb, #rrggbbaa), named colours and
// transparent, rgb()/rgba(), hsl()/hsla(), hwb(), lab(), lch(), oklab(),
// oklch() and color() in the predefinedSpaces. Alpha is accepted and
// dropped.
func ParseLiteral(raw string) (Generic, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Generic{}, fmt.Errorf("%w: empty value", ErrUnparseable)
	}

	lexer := css.NewLexer(parse.NewInputString(text))
	tt, data := nextSignificant(lexer)

	var (
		g   Generic
		err error
	)
	switch tt {
	case css.HashToken:
		g, err = parseHash(string(data))
	case css.IdentToken:
		g, err = parseNamed(string(data))
	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(string(data), "("))
		if name == "color" {
			g, err = parsePredefined(lexer)
			break
		}
		var args []component
		args, err = readArguments(lexer)
		if err == nil {
			g, err = parseFunction(name, args)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	if err != nil {
		return Generic{}, err
	}

	// Only whitespace and comments may follow the colour
	if tt, data := nextSignificant(lexer); tt != css.ErrorToken {
		return Generic{}, fmt.Errorf("%w: unexpected %q after color", ErrUnparseable, data)
	}
	return g, nil
}

// nextSignificant skips whitespace and comments
func nextSignificant(lexer *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, data := lexer.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, data
		}
	}
}

func parseHash(text string) (Generic, error) {
	digits := text[1:]
	for _, ch := range digits {
		if !isHexDigit(ch) {
			return Generic{}, fmt.Errorf("%w: %q is not a hex color", ErrUnparseable, text)
		}
	}

	// colorful.Hex only knows the opaque forms; drop the alpha digits
	switch len(digits) {
	case 4:
		digits = digits[:3]
	case 8:
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Generic{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return Generic{Space: SpaceSRGB, V: [3]float64{c.R, c.G, c.B}}, nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func parseNamed(name string) (Generic, error) {
	name = strings.ToLower(name)
	if name == "transparent" {
		// Alpha is dropped, leaving black
		return Generic{Space: SpaceSRGB}, nil
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return Generic{}, fmt.Errorf("%w: unknown color name %q", ErrUnparseable, name)
	}
	return Generic{
		Space: SpaceSRGB,
		V:     [3]float64{float64(rgba.R) / 255, float64(rgba.G) / 255, float64(rgba.B) / 255},
	}, nil
}

// readArguments consumes tokens up to the closing parenthesis. It accepts
// either the modern space-separated syntax with an optional "/ alpha", or
// the legacy comma-separated syntax, and returns the colour components with
// any alpha stripped.
func readArguments(lexer *css.Lexer) ([]component, error) {
	var (
		args       []component
		seps       []byte // separator preceding args[i], for i >= 1
		pendingSep byte   = ' '
	)

	for {
		tt, data := lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.CommaToken:
			if len(args) == 0 || pendingSep != ' ' {
				return nil, fmt.Errorf("%w: misplaced comma", ErrUnparseable)
			}
			pendingSep = ','
			continue
		case css.DelimToken:
			if string(data) != "/" || len(args) == 0 || pendingSep != ' ' {
				return nil, fmt.Errorf("%w: unexpected %q", ErrUnparseable, data)
			}
			pendingSep = '/'
			continue
		case css.RightParenthesisToken:
			if pendingSep != ' ' {
				return nil, fmt.Errorf("%w: trailing separator", ErrUnparseable)
			}
			return stripAlpha(args, seps)
		case css.ErrorToken:
			return nil, fmt.Errorf("%w: unterminated function", ErrUnparseable)
		}

		comp, err := parseComponent(tt, data)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			seps = append(seps, pendingSep)
		}
		args = append(args, comp)
		pendingSep = ' '
	}
}

func stripAlpha(args []component, seps []byte) ([]component, error) {
	commas := 0
	slashAt := -1
	for i, sep := range seps {
		switch sep {
		case ',':
			commas++
		case '/':
			if slashAt >= 0 {
				return nil, fmt.Errorf("%w: more than one '/'", ErrUnparseable)
			}
			slashAt = i + 1
		}
	}

	switch {
	case len(args) == 3 && (commas == 0 || commas == 2) && slashAt < 0:
		return args, nil
	case len(args) == 4 && commas == 3:
		return args[:3], nil
	case len(args) == 4 && commas == 0 && slashAt == 3:
		return args[:3], nil
	}
	return nil, fmt.Errorf("%w: expected 3 components with optional alpha, got %d", ErrUnparseable, len(args))
}

func parseComponent(tt css.TokenType, data []byte) (component, error) {
	switch tt {
	case css.NumberToken:
		v, err := parseNumber(data)
		return component{kind: kindNumber, value: v}, err
	case css.PercentageToken:
		v, err := parseNumber(data[:len(data)-1])
		return component{kind: kindPercent, value: v}, err
	case css.DimensionToken:
		v, n := pstrconv.ParseFloat(data)
		if n == 0 {
			return component{}, fmt.Errorf("%w: bad dimension %q", ErrUnparseable, data)
		}
		return component{kind: kindDimension, value: v, unit: strings.ToLower(string(data[n:]))}, nil
	case css.IdentToken:
		if strings.EqualFold(string(data), "none") {
			return component{kind: kindNone}, nil
		}
	}
	return component{}, fmt.Errorf("%w: unexpected %q", ErrUnparseable, data)
}

func parseNumber(data []byte) (float64, error) {
	v, n := pstrconv.ParseFloat(data)
	if n == 0 || n != len(data) {
		return 0, fmt.Errorf("%w: bad number %q", ErrUnparseable, data)
	}
	return v, nil
}

func parseFunction(name string, args []component) (Generic, error) {
	switch name {
	case "rgb", "rgba":
		return parseRGB(args)
	case "hsl", "hsla":
		return parseHSL(args)
	case "hwb":
		return parseHWB(args)
	case "lab":
		return parseLab(args)
	case "lch":
		return parseLch(args)
	case "oklab":
		return parseOkLab(args)
	case "oklch":
		return parseOkLch(args)
	}
	return Generic{}, fmt.Errorf("%w: unsupported function %s()", ErrUnparseable, name)
}

func parseRGB(args []component) (Generic, error) {
	var g Generic
	g.Space = SpaceSRGB
	for i, arg := range args {
		switch arg.kind {
		case kindNumber:
			g.V[i] = arg.value / 255
		case kindPercent:
			g.V[i] = arg.value / 100
		case kindNone:
			g.V[i] = 0
		default:
			return Generic{}, fmt.Errorf("%w: rgb() channel must be a number or percentage", ErrUnparseable)
		}
	}
	return g, nil
}

func parseHSL(args []component) (Generic, error) {
	h, err := angle(args[0])
	if err != nil {
		return Generic{}, err
	}
	s, err := fraction(args[1])
	if err != nil {
		return Generic{}, err
	}
	l, err := fraction(args[2])
	if err != nil {
		return Generic{}, err
	}

	r, gr, b := css.HSL2RGB(normalizeHue(h)/360, clamp01(s), clamp01(l))
	return Generic{Space: SpaceSRGB, V: [3]float64{r, gr, b}}, nil
}

func parseHWB(args []component) (Generic, error) {
	h, err := angle(args[0])
	if err != nil {
		return Generic{}, err
	}
	w, err := fraction(args[1])
	if err != nil {
		return Generic{}, err
	}
	bk, err := fraction(args[2])
	if err != nil {
		return Generic{}, err
	}
	w, bk = clamp01(w), clamp01(bk)

	if w+bk >= 1 {
		grey := w / (w + bk)
		return Generic{Space: SpaceSRGB, V: [3]float64{grey, grey, grey}}, nil
	}

	r, g, b := css.HSL2RGB(normalizeHue(h)/360, 1, 0.5)
	scale := 1 - w - bk
	return Generic{
		Space: SpaceSRGB,
		V:     [3]float64{r*scale + w, g*scale + w, b*scale + w},
	}, nil
}

// parsePredefined reads the rest of color(<space> c1 c2 c3 [/ alpha])
func parsePredefined(lexer *css.Lexer) (Generic, error) {
	tt, data := nextSignificant(lexer)
	if tt != css.IdentToken {
		return Generic{}, fmt.Errorf("%w: color() needs a color space", ErrUnparseable)
	}
	space, ok := predefinedSpaces[strings.ToLower(string(data))]
	if !ok {
		return Generic{}, fmt.Errorf("%w: unsupported color space %q", ErrUnparseable, data)
	}

	args, err := readArguments(lexer)
	if err != nil {
		return Generic{}, err
	}
	g := Generic{Space: space}
	for i, arg := range args {
		if g.V[i], err = axis(arg, 1); err != nil {
			return Generic{}, err
		}
	}
	return g, nil
}

func parseLab(args []component) (Generic, error) {
	l, err := cieLightness(args[0])
	if err != nil {
		return Generic{}, err
	}
	a, err := axis(args[1], labAxisPercent)
	if err != nil {
		return Generic{}, err
	}
	b, err := axis(args[2], labAxisPercent)
	if err != nil {
		return Generic{}, err
	}
	return Generic{Space: SpaceLab, V: [3]float64{l, a, b}}, nil
}

func parseLch(args []component) (Generic, error) {
	l, err := cieLightness(args[0])
	if err != nil {
		return Generic{}, err
	}
	c, err := axis(args[1], lchChromaPercent)
	if err != nil {
		return Generic{}, err
	}
	return withHue(Generic{Space: SpaceLch, V: [3]float64{l, math.Max(c, 0), 0}}, args[2])
}

func parseOkLab(args []component) (Generic, error) {
	l, err := okLightness(args[0])
	if err != nil {
		return Generic{}, err
	}
	a, err := axis(args[1], okChromaPercent)
	if err != nil {
		return Generic{}, err
	}
	b, err := axis(args[2], okChromaPercent)
	if err != nil {
		return Generic{}, err
	}
	return Generic{Space: SpaceOkLab, V: [3]float64{l, a, b}}, nil
}

func parseOkLch(args []component) (Generic, error) {
	l, err := okLightness(args[0])
	if err != nil {
		return Generic{}, err
	}
	c, err := axis(args[1], okChromaPercent)
	if err != nil {
		return Generic{}, err
	}
	return withHue(Generic{Space: SpaceOkLch, V: [3]float64{l, math.Max(c, 0), 0}}, args[2])
}

// withHue sets the third component of a polar colour, or marks it missing
func withHue(g Generic, c component) (Generic, error) {
	if c.kind == kindNone {
		g.HueMissing = true
		return g, nil
	}
	h, err := angle(c)
	if err != nil {
		return Generic{}, err
	}
	g.V[2] = h
	return g, nil
}

// angle returns degrees for a bare number or an angle dimension
func angle(c component) (float64, error) {
	switch c.kind {
	case kindNumber:
		return c.value, nil
	case kindNone:
		return 0, nil
	case kindDimension:
		switch c.unit {
		case "deg":
			return c.value, nil
		case "grad":
			return c.value * 360 / 400, nil
		case "rad":
			return c.value * 180 / math.Pi, nil
		case "turn":
			return c.value * 360, nil
		}
	}
	return 0, fmt.Errorf("%w: expected an angle", ErrUnparseable)
}

// fraction maps a percentage (or bare number meaning percent) to 0..1
func fraction(c component) (float64, error) {
	switch c.kind {
	case kindPercent, kindNumber:
		return c.value / 100, nil
	case kindNone:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: expected a percentage", ErrUnparseable)
}

func okLightness(c component) (float64, error) {
	switch c.kind {
	case kindNumber:
		return clamp01(c.value), nil
	case kindPercent:
		return clamp01(c.value / 100), nil
	case kindNone:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: expected a lightness", ErrUnparseable)
}

// cieLightness reads lab()/lch() lightness, 0..100 either as number or percent
func cieLightness(c component) (float64, error) {
	switch c.kind {
	case kindNumber, kindPercent:
		return math.Max(0, math.Min(c.value, 100)), nil
	case kindNone:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: expected a lightness", ErrUnparseable)
}

// axis reads a number, or a percentage of percentRef
func axis(c component, percentRef float64) (float64, error) {
	switch c.kind {
	case kindNumber:
		return c.value, nil
	case kindPercent:
		return c.value / 100 * percentRef, nil
	case kindNone:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: expected a number or percentage", ErrUnparseable)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
