// Package main provides the shadegen CLI tool for generating OKLCH lightness ladders.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yacobolo/shadegen/internal/shades"
)

func main() {
	// .env entries behave like SHADEGEN_* variables; the real environment wins
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		reporter := shades.NewReporter(os.Stderr, getBoolWithFallback("color", false), false)
		reporter.PrintError(err)
		os.Exit(1)
	}
}
