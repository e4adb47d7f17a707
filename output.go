package shadegen

import (
	"io"
	"os"

	"github.com/yacobolo/shadegen/internal/shades"
)

// ReportFormat selects how the run report is written
type ReportFormat string

const (
	// ReportText prints a one-line summary (verbose mode only)
	ReportText ReportFormat = "text"
	// ReportJSON exports structured data in JSON format (tooling integration)
	ReportJSON ReportFormat = "json"
	// ReportNone suppresses the report
	ReportNone ReportFormat = "none"
)

// DetermineReportFormat selects the report format based on flags
func DetermineReportFormat(formatFlag string, quiet bool) ReportFormat {
	// Explicit -quiet flag wins
	if quiet {
		return ReportNone
	}

	switch formatFlag {
	case "json":
		return ReportJSON
	case "none":
		return ReportNone
	default:
		// Invalid or empty format falls back to text
		return ReportText
	}
}

// WriteReport writes the run report in the requested format. Text goes
// through the reporter; JSON is written to w.
func WriteReport(w io.Writer, result *GenerateResult, format ReportFormat, reporter *shades.Reporter) {
	switch format {
	case ReportText:
		if reporter != nil {
			reporter.PrintSummary(len(result.Seeds), result.SeedsGenerated, len(result.Diagnostics))
		}

	case ReportJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
