package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/shadegen"
	"github.com/yacobolo/shadegen/internal/shades"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate lightness ladders from CSS colour seeds",
	Long: `Scan the input CSS for --generate-color-<name>: <value>; declarations and
emit twelve lightness stops per seed plus light-dark() pairs in an @theme block.
The document is printed to stdout unless --file is given.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addSourceFlags(generateCmd.Flags())
	addOutputFlags(generateCmd.Flags())
}

// addSourceFlags registers the flags that decide which seeds are read
func addSourceFlags(f *pflag.FlagSet) {
	f.StringSliceP("input", "i", nil, "Input CSS file or ** glob (repeatable)")
	f.String("stops", shades.DefaultStops().String(), "Comma-separated lightness stops, strictly descending")
	f.String("marker", shadegen.DefaultMarker, "Seed declaration marker")
	f.Bool("respect-gitignore", true, "Skip gitignored glob matches")
	f.Int("concurrency", 1, "Parallel derivation workers")
}

// addOutputFlags registers the flags that shape the generated document
func addOutputFlags(f *pflag.FlagSet) {
	f.BoolP("oklch", "o", false, "Emit oklch(L% C H) values instead of hex")
	f.StringP("file", "f", "", "Write the document to this file instead of stdout")
	f.String("prefix", shades.DefaultPrefix, "Output variable prefix")
	f.String("report", string(shadegen.ReportText), "Run report format: text|json|none")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", false)
	verbose := getBoolWithFallback("verbose", false) && !quiet
	reporter := shades.NewReporter(cmd.ErrOrStderr(), getBoolWithFallback("color", false), verbose)
	config.Reporter = reporter

	result, err := shadegen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		reporter.PrintDiagnostics(result.Diagnostics)
	}

	out := cmd.OutOrStdout()
	if config.OutputFile == "" {
		fmt.Fprint(out, result.Document)
	} else if !quiet {
		reporter.PrintWritten(config.OutputFile)
	}

	// The text summary is a progress line, so it only shows in verbose mode
	format := shadegen.DetermineReportFormat(getStringWithFallback("report", string(shadegen.ReportText)), quiet)
	if format != shadegen.ReportText || verbose {
		shadegen.WriteReport(out, result, format, reporter)
	}

	return nil
}
