package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .shadegen.yaml config file",
	Long:  `Create a .shadegen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".shadegen.yaml"); err == nil && !force {
			return fmt.Errorf(".shadegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".shadegen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .shadegen.yaml")
		return nil
	},
}

const defaultConfig = `# shadegen configuration
# Every key can also be set as SHADEGEN_<KEY> (dashes become underscores)
# or with the matching command-line flag.

# Console
verbose: false
color: false

# Seeds
input:
  - "src/styles/**/*.css"
marker: generate-color
respect-gitignore: true

# Ladder
stops: [98, 95, 90, 80, 70, 60, 50, 40, 30, 20, 15, 10]
concurrency: 1

# Output
oklch: false             # false = hex, true = oklch(L% C H)
prefix: color            # --<prefix>-<seed>-<stop>
file: ""                 # empty prints to stdout
report: text             # text | json | none
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
