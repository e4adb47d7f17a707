package shades

import (
	"fmt"
	"strings"
)

// DefaultPrefix is the leading segment of every generated variable name
const DefaultPrefix = "color"

// Document wrapper tokens
const (
	documentOpen  = "@theme {\n"
	documentClose = "}\n"
)

// Formatter renders ladder steps and pairs as custom property declarations
type Formatter struct {
	format Format
	prefix string
	model  Model
}

// NewFormatter creates a formatter. An empty prefix falls back to
// DefaultPrefix and a nil model to DefaultModel.
func NewFormatter(format Format, prefix string, model Model) *Formatter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if model == nil {
		model = DefaultModel
	}
	return &Formatter{format: format, prefix: prefix, model: model}
}

// StepName returns the variable name for one stop, e.g. --color-brand-95
func (f *Formatter) StepName(seed string, percent int) string {
	return fmt.Sprintf("--%s-%s-%d", f.prefix, seed, percent)
}

// PairName returns the variable name for a pair, e.g. --color-brand-95-15
func (f *Formatter) PairName(seed string, p Pair) string {
	return fmt.Sprintf("--%s-%s-%d-%d", f.prefix, seed, p.High, p.Low)
}

// StepValue renders a colour in the configured format
func (f *Formatter) StepValue(c Color) string {
	if f.format == FormatOkLch {
		return OkLchString(c)
	}
	return f.model.ToHex(c)
}

// PairValue renders the light-dark() reference for a pair
func (f *Formatter) PairValue(seed string, p Pair) string {
	return fmt.Sprintf("light-dark(var(%s), var(%s))", f.StepName(seed, p.High), f.StepName(seed, p.Low))
}

// Block renders all declarations for one seed: steps, a blank line, pairs,
// a blank line. The pair section is omitted when there are no pairs.
func (f *Formatter) Block(seed string, steps []Step, pairs []Pair) string {
	var b strings.Builder

	for _, step := range steps {
		fmt.Fprintf(&b, "  %s: %s;\n", f.StepName(seed, step.Percent), f.StepValue(step.Color))
	}
	b.WriteString("\n")

	if len(pairs) == 0 {
		return b.String()
	}
	for _, p := range pairs {
		fmt.Fprintf(&b, "  %s: %s;\n", f.PairName(seed, p), f.PairValue(seed, p))
	}
	b.WriteString("\n")

	return b.String()
}

// OkLchString formats a colour as oklch(L% C H) with 2, 4 and 2 decimals.
// An undefined hue is written as none.
func OkLchString(c Color) string {
	hue := "none"
	if !c.NoHue {
		hue = fmt.Sprintf("%.2f", c.H)
	}
	return fmt.Sprintf("oklch(%.2f%% %.4f %s)", c.L*100, c.C, hue)
}

// Document wraps per-seed blocks, in the order given, in an @theme block
func Document(blocks []string) string {
	var b strings.Builder
	b.WriteString(documentOpen)
	for _, block := range blocks {
		b.WriteString(block)
	}
	b.WriteString(documentClose)
	return b.String()
}
