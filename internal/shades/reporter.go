package shades

import (
	"fmt"
	"io"
	"os"
)

// Reporter writes console messages for a run
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, forceColor, verbose bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColor),
		verbose:   verbose,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Respect https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// Verbosef prints a progress line when verbose output is enabled
func (r *Reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGray, fmt.Sprintf(format, args...), r.useColors))
}

// PrintDiagnostics prints one line per skipped seed
func (r *Reporter) PrintDiagnostics(diags []Diagnostic) {
	for _, d := range diags {
		r.printDiagnostic(d)
	}
}

func (r *Reporter) printDiagnostic(d Diagnostic) {
	msg := fmt.Sprintf(DiagnosticMessage, RenderStyle(StyleCyan, d.Seed, r.useColors), d.Value)
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "warning:", r.useColors), msg)
	if r.verbose {
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGray, d.Reason, r.useColors))
	}
}

// PrintWritten confirms the document was written to path
func (r *Reporter) PrintWritten(path string) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, fmt.Sprintf("CSS written to %s", path), r.useColors))
}

// PrintError prints a fatal error
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "error:", r.useColors), err)
}

// PrintSummary prints seed counts for the run
func (r *Reporter) PrintSummary(found, generated, skipped int) {
	line := fmt.Sprintf("%s found, %s generated",
		pluralizeCount(found, "seed", "seeds"),
		pluralizeCount(generated, "ladder", "ladders"))
	if skipped > 0 {
		line += fmt.Sprintf(" (%d skipped)", skipped)
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGray, line, r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
