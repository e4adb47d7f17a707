package shades

import "fmt"

// Derivation is the full result of running one seed through the pipeline
type Derivation struct {
	Seed  string
	Color Color
	Steps []Step
	Pairs []Pair
	Block string
}

// Derive parses and converts a seed value, builds its ladder and pairs, and
// renders its block. The returned error wraps ErrUnparseable or
// ErrUnconvertible; callers skip the seed rather than abort.
func Derive(model Model, f *Formatter, name, raw string, stops Stops) (*Derivation, error) {
	if model == nil {
		model = DefaultModel
	}

	generic, err := model.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	col, err := model.ToPerceptual(generic)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", name, err)
	}

	steps := Ladder(col, stops)
	pairs := Pairs(steps)
	return &Derivation{
		Seed:  name,
		Color: col,
		Steps: steps,
		Pairs: pairs,
		Block: f.Block(name, steps, pairs),
	}, nil
}
