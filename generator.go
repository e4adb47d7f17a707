package shadegen

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/shadegen/internal/shades"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	config, err := normalize(config)
	if err != nil {
		return nil, err
	}
	result := &GenerateResult{
		Stops:      config.Stops,
		Format:     config.Format,
		Prefix:     config.Prefix,
		OutputFile: config.OutputFile,
	}

	// 1. Resolve input files
	var gi *gitIgnore
	if config.RespectGitignore {
		gi = loadGitIgnore(config.GitignoreFile)
	}
	files, stats, err := expandInputs(config.Inputs, gi)
	if err != nil {
		return nil, fmt.Errorf("resolve inputs: %w", err)
	}
	if stats.FilesSkipped > 0 {
		config.verbosef("Skipped %d gitignored files", stats.FilesSkipped)
	}

	// 2. Extract seeds, last declaration wins across all files
	seeds, err := readSeeds(files, config)
	if err != nil {
		return nil, err
	}
	result.FilesRead = files
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSeeds, strings.Join(config.Inputs, ", "))
	}
	result.Seeds = seeds
	config.verbosef("Found %d seeds", len(seeds))

	// 3. Derive one block per seed
	derivations, diags := deriveAll(seeds, config)
	result.Diagnostics = diags

	blocks := make([]string, 0, len(derivations))
	for _, d := range derivations {
		blocks = append(blocks, d.Block)
	}
	result.Derivations = derivations
	result.SeedsGenerated = len(derivations)

	// 4. Assemble and write
	result.Document = shades.Document(blocks)
	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, []byte(result.Document), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", config.OutputFile, err)
		}
	}

	return result, nil
}

// normalize fills defaults and validates the config
func normalize(config Config) (Config, error) {
	if len(config.Inputs) == 0 {
		return config, ErrNoInputs
	}
	if config.Format == "" {
		config.Format = shades.FormatHex
	}
	if config.Format != shades.FormatHex && config.Format != shades.FormatOkLch {
		return config, fmt.Errorf("unknown format %q (want %s or %s)", config.Format, shades.FormatHex, shades.FormatOkLch)
	}
	if config.Stops == nil {
		config.Stops = shades.DefaultStops()
	}
	if err := config.Stops.Validate(); err != nil {
		return config, err
	}
	if config.Marker == "" {
		config.Marker = DefaultMarker
	}
	if config.Prefix == "" {
		config.Prefix = shades.DefaultPrefix
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.Model == nil {
		config.Model = shades.DefaultModel
	}
	return config, nil
}

func (c Config) verbosef(format string, args ...any) {
	if c.Reporter != nil {
		c.Reporter.Verbosef(format, args...)
	}
}

// readSeeds reads every file and merges their seeds in file order
func readSeeds(files []string, config Config) ([]Seed, error) {
	re := patternFor(config.Marker)
	set := newSeedSet()

	for _, file := range files {
		// #nosec G304 - path comes from the user's own input list
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		config.verbosef("Read %s", file)
		set.scan(re, string(content), file)
	}

	return set.seeds, nil
}

// deriveAll runs every seed through the pipeline. Work is spread over
// config.Concurrency workers; results are slotted by seed index so the
// returned order always matches seed order.
func deriveAll(seeds []Seed, config Config) ([]*shades.Derivation, []Diagnostic) {
	formatter := shades.NewFormatter(config.Format, config.Prefix, config.Model)

	results := make([]*shades.Derivation, len(seeds))
	errs := make([]error, len(seeds))

	var g errgroup.Group
	g.SetLimit(config.Concurrency)
	for i, seed := range seeds {
		g.Go(func() error {
			results[i], errs[i] = shades.Derive(config.Model, formatter, seed.Name, seed.Value, config.Stops)
			return nil
		})
	}
	_ = g.Wait()

	derivations := make([]*shades.Derivation, 0, len(seeds))
	var diags []Diagnostic
	for i, seed := range seeds {
		if errs[i] != nil {
			diags = append(diags, shades.NewDiagnostic(seed.Name, seed.Value, seed.Source, errs[i]))
			continue
		}
		derivations = append(derivations, results[i])
	}
	return derivations, diags
}
