package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/shadegen"
	"github.com/yacobolo/shadegen/internal/shades"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show each seed's ladder as terminal colour swatches",
	Long: `Derive every seed's ladder and draw it as a row of swatches, one per
stop. Nothing is written to disk. Without colour support a stop/hex/oklch
listing is printed instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	addSourceFlags(previewCmd.Flags())
}

func runPreview(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}
	config.OutputFile = ""

	reporter := shades.NewReporter(cmd.ErrOrStderr(), getBoolWithFallback("color", false), getBoolWithFallback("verbose", false))
	config.Reporter = reporter

	result, err := shadegen.Generate(config)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	reporter.PrintDiagnostics(result.Diagnostics)

	out := cmd.OutOrStdout()
	for _, d := range result.Derivations {
		fmt.Fprint(out, shades.RenderPreview(d, config.Model, reporter.UseColors()))
	}
	return nil
}
