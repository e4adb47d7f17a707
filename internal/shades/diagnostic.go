package shades

import "errors"

// Diagnostic records a seed that produced no output
type Diagnostic struct {
	Seed     string `json:"seed"`     // "brand"
	Value    string `json:"value"`    // "notacolor"
	Source   string `json:"source"`   // file the seed was last declared in
	Severity string `json:"severity"` // "warning"
	Reason   string `json:"reason"`   // "unrecognized color literal: ..."
	Kind     string `json:"kind"`     // DiagnosticUnparseable | DiagnosticUnconvertible
}

// SeverityWarning marks a skipped seed; skips never fail the run
const SeverityWarning = "warning"

// Diagnostic kinds
const (
	DiagnosticUnparseable   = "unparseable"
	DiagnosticUnconvertible = "unconvertible"
)

// DiagnosticMessage is the console text for a skipped seed
const DiagnosticMessage = "Skipping %s: could not parse %s"

// NewDiagnostic classifies a Derive error for the given seed
func NewDiagnostic(seed, value, source string, err error) Diagnostic {
	kind := DiagnosticUnparseable
	if errors.Is(err, ErrUnconvertible) {
		kind = DiagnosticUnconvertible
	}
	return Diagnostic{
		Seed:     seed,
		Value:    value,
		Source:   source,
		Severity: SeverityWarning,
		Reason:   err.Error(),
		Kind:     kind,
	}
}
