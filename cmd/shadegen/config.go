package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/shadegen"
	"github.com/yacobolo/shadegen/internal/shades"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".shadegen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unset flags only fill keys that
	// neither the file nor the environment provided.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SHADEGEN_* prefix)
	if err := k.Load(env.Provider("SHADEGEN_", ".", func(s string) string {
		// SHADEGEN_FILE -> file
		// SHADEGEN_RESPECT_GITIGNORE -> respect-gitignore
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SHADEGEN_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (shadegen.Config, error) {
	stops, err := getStops()
	if err != nil {
		return shadegen.Config{}, err
	}

	format := shades.FormatHex
	if getBoolWithFallback("oklch", false) {
		format = shades.FormatOkLch
	}

	return shadegen.Config{
		Inputs:           getInputs(),
		OutputFile:       getStringWithFallback("file", ""),
		Format:           format,
		Stops:            stops,
		Prefix:           getStringWithFallback("prefix", shades.DefaultPrefix),
		Marker:           getStringWithFallback("marker", shadegen.DefaultMarker),
		Concurrency:      getIntWithFallback("concurrency", 1),
		RespectGitignore: getBoolWithFallback("respect-gitignore", true),
	}, nil
}

// getInputs reads the input list. Flags and YAML give a list; the
// environment gives one comma-separated string.
func getInputs() []string {
	if inputs := k.Strings("input"); len(inputs) > 0 {
		return inputs
	}
	var inputs []string
	for _, part := range strings.Split(k.String("input"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			inputs = append(inputs, part)
		}
	}
	return inputs
}

// getStops accepts either a YAML list of ints or a comma-separated string
func getStops() (shades.Stops, error) {
	switch v := k.Get("stops").(type) {
	case nil:
		return shades.DefaultStops(), nil
	case string:
		return shades.ParseStops(v)
	default:
		stops := shades.Stops(k.Ints("stops"))
		if err := stops.Validate(); err != nil {
			return nil, err
		}
		return stops, nil
	}
}

// getStringWithFallback returns the key's value, or the default when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the key's value, or the default when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the key's value, or the default when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
