package shadegen

import (
	"errors"

	"github.com/yacobolo/shadegen/internal/shades"
)

// Fatal conditions for a run
var (
	// ErrNoSeeds means no seed declarations were found in any input
	ErrNoSeeds = errors.New("no seed declarations found")
	// ErrNoInputFiles means an input glob matched nothing
	ErrNoInputFiles = errors.New("no input files matched")
	// ErrNoInputs means Config.Inputs is empty
	ErrNoInputs = errors.New("no input given")
)

// DefaultMarker is the custom property prefix that marks a seed
const DefaultMarker = "generate-color"

// Diagnostic records a seed that produced no output
type Diagnostic = shades.Diagnostic

// Config holds generator configuration
type Config struct {
	Inputs           []string      // paths or ** globs, read in order
	OutputFile       string        // write the document here; empty = hand back only
	Format           shades.Format // hex (default) or oklch
	Stops            shades.Stops  // defaults to shades.DefaultStops()
	Prefix           string        // output variable prefix (default: "color")
	Marker           string        // seed marker (default: "generate-color")
	Concurrency      int           // parallel derivation workers (default: 1)
	RespectGitignore bool          // skip gitignored glob matches
	GitignoreFile    string        // default: ".gitignore"
	Model            shades.Model  // colour math; nil = go-colorful
	Reporter         *shades.Reporter
}

// Seed is one named colour found in the input
type Seed struct {
	Name   string `json:"name"`   // "fg-accent"
	Value  string `json:"value"`  // "#e6b97a"
	Source string `json:"source"` // file of the last declaration
}

// GenerateResult contains the document and run stats
type GenerateResult struct {
	FilesRead      []string
	Seeds          []Seed
	SeedsGenerated int
	Stops          shades.Stops
	Format         shades.Format
	Prefix         string
	Diagnostics    []Diagnostic
	Document       string
	OutputFile     string
	Derivations    []*shades.Derivation // generated seeds, in seed order
}
