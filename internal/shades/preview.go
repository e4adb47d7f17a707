package shades

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// swatchTextThreshold is the OKLCH lightness above which swatch labels
// switch from white to black text
const swatchTextThreshold = 0.6

// RenderPreview draws a derivation's ladder as a row of colour swatches
// labelled with their stop. Without colours it falls back to a plain
// "stop hex" listing.
func RenderPreview(d *Derivation, model Model, useColors bool) string {
	if model == nil {
		model = DefaultModel
	}

	header := RenderStyle(StyleCyan, d.Seed, useColors)

	if !useColors {
		var b strings.Builder
		b.WriteString(header + "\n")
		for _, step := range d.Steps {
			fmt.Fprintf(&b, "  %3d  %s  %s\n", step.Percent, model.ToHex(step.Color), OkLchString(step.Color))
		}
		return b.String()
	}

	cells := make([]string, len(d.Steps))
	for i, step := range d.Steps {
		fg := lipgloss.Color("#ffffff")
		if step.Color.L > swatchTextThreshold {
			fg = lipgloss.Color("#000000")
		}
		cells[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(model.ToHex(step.Color))).
			Foreground(fg).
			Padding(0, 1).
			Render(fmt.Sprintf("%3d", step.Percent))
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n"
}
