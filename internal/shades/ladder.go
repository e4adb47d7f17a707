package shades

// Ladder derives one step per stop. Chroma and hue come from the seed
// unchanged; lightness is stop/100. Steps outside the sRGB gamut are kept
// as-is and only clipped when rendered as hex.
func Ladder(seed Color, stops Stops) []Step {
	steps := make([]Step, len(stops))
	for i, p := range stops {
		col := seed
		col.L = float64(p) / 100
		steps[i] = Step{Percent: p, Color: col}
	}
	return steps
}
