package shadegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/shadegen/internal/shades"
)

// brandDocument holds go-colorful's values; other OKLCH implementations
// can differ by one in the last hex digit.
const brandDocument = `@theme {
  --color-brand-98: #ffd673;
  --color-brand-95: #ffcc68;
  --color-brand-90: #ffbb56;
  --color-brand-80: #ff9a2c;
  --color-brand-70: #ef7a00;
  --color-brand-60: #cd5a00;
  --color-brand-50: #aa3a00;
  --color-brand-40: #891400;
  --color-brand-30: #680000;
  --color-brand-20: #470000;
  --color-brand-15: #360000;
  --color-brand-10: #250000;

  --color-brand-98-10: light-dark(var(--color-brand-98), var(--color-brand-10));
  --color-brand-95-15: light-dark(var(--color-brand-95), var(--color-brand-15));
  --color-brand-90-20: light-dark(var(--color-brand-90), var(--color-brand-20));
  --color-brand-80-30: light-dark(var(--color-brand-80), var(--color-brand-30));
  --color-brand-70-40: light-dark(var(--color-brand-70), var(--color-brand-40));
  --color-brand-60-50: light-dark(var(--color-brand-60), var(--color-brand-50));

}
`

// writeInput creates a CSS file in a temp dir and returns its path
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writeFile(t, path, content)
	return path
}

func TestGenerate_BrandDocument(t *testing.T) {
	input := writeInput(t, "theme.css", ":root {\n  --generate-color-brand: #ff8800;\n}\n")

	result, err := Generate(Config{Inputs: []string{input}})
	require.NoError(t, err)

	assert.Equal(t, brandDocument, result.Document)
	assert.Equal(t, []string{input}, result.FilesRead)
	assert.Equal(t, []Seed{{Name: "brand", Value: "#ff8800", Source: input}}, result.Seeds)
	assert.Equal(t, 1, result.SeedsGenerated)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, shades.FormatHex, result.Format)
	assert.Equal(t, shades.DefaultStops(), result.Stops)
}

func TestGenerate_OkLchFormat(t *testing.T) {
	input := writeInput(t, "theme.css", "--generate-color-brand: #ff8800;")

	result, err := Generate(Config{
		Inputs: []string{input},
		Format: shades.FormatOkLch,
		Stops:  shades.Stops{90, 10},
	})
	require.NoError(t, err)

	want := "@theme {\n" +
		"  --color-brand-90: oklch(90.00% 0.1811 56.46);\n" +
		"  --color-brand-10: oklch(10.00% 0.1811 56.46);\n" +
		"\n" +
		"  --color-brand-90-10: light-dark(var(--color-brand-90), var(--color-brand-10));\n" +
		"\n" +
		"}\n"
	assert.Equal(t, want, result.Document)
}

func TestGenerate_SkipsUnparseableSeed(t *testing.T) {
	input := writeInput(t, "theme.css", `
		--generate-color-bad: notacolor;
		--generate-color-good: #ff8800;
	`)

	var buf bytes.Buffer
	result, err := Generate(Config{Inputs: []string{input}, Reporter: shades.NewReporter(&buf, false, false)})
	require.NoError(t, err)

	assert.Len(t, result.Seeds, 2)
	assert.Equal(t, 1, result.SeedsGenerated)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "bad", result.Diagnostics[0].Seed)
	assert.Equal(t, "notacolor", result.Diagnostics[0].Value)
	assert.Equal(t, shades.DiagnosticUnparseable, result.Diagnostics[0].Kind)

	assert.NotContains(t, result.Document, "--color-bad")
	assert.Equal(t, brandDocument, strings.ReplaceAll(result.Document, "color-good", "color-brand"))
}

func TestGenerate_NoSeeds(t *testing.T) {
	input := writeInput(t, "theme.css", ":root { --color-brand: #ff8800; }")

	_, err := Generate(Config{Inputs: []string{input}})
	assert.ErrorIs(t, err, ErrNoSeeds)
}

func TestGenerate_OnlyUnparseableSeeds(t *testing.T) {
	input := writeInput(t, "theme.css", "--generate-color-bad: nope;")

	result, err := Generate(Config{Inputs: []string{input}})
	require.NoError(t, err)
	assert.Equal(t, "@theme {\n}\n", result.Document)
	assert.Len(t, result.Diagnostics, 1)
}

func TestGenerate_UnreadableInputIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.css")

	_, err := Generate(Config{Inputs: []string{missing}})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read "+missing)
}

func TestGenerate_ConfigValidation(t *testing.T) {
	input := writeInput(t, "theme.css", "--generate-color-brand: #ff8800;")

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "no inputs", config: Config{}, wantErr: ErrNoInputs},
		{name: "ascending stops", config: Config{Inputs: []string{input}, Stops: shades.Stops{10, 20}}, wantErr: shades.ErrInvalidStops},
		{name: "out of range stop", config: Config{Inputs: []string{input}, Stops: shades.Stops{120}}, wantErr: shades.ErrInvalidStops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.config)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Generate(Config{Inputs: []string{input}, Format: "rgb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "rgb"`)
}

func TestGenerate_LastWriteWinsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.css")
	second := filepath.Join(dir, "b.css")
	writeFile(t, first, "--generate-color-brand: #000000;\n--generate-color-accent: #00ff00;")
	writeFile(t, second, "--generate-color-brand: #ff8800;")

	result, err := Generate(Config{Inputs: []string{first, second}})
	require.NoError(t, err)

	assert.Equal(t, []Seed{
		{Name: "brand", Value: "#ff8800", Source: second},
		{Name: "accent", Value: "#00ff00", Source: first},
	}, result.Seeds)
	assert.Less(t, strings.Index(result.Document, "--color-brand-98"), strings.Index(result.Document, "--color-accent-98"))
	assert.Contains(t, result.Document, "--color-brand-98: #ffd673;")
}

func TestGenerate_ConcurrencyKeepsSeedOrder(t *testing.T) {
	var css strings.Builder
	names := []string{"red", "orange", "yellow", "green", "teal", "blue", "indigo", "violet"}
	values := []string{"#ff0000", "#ff8800", "#ffff00", "#00ff00", "teal", "blue", "indigo", "violet"}
	for i, name := range names {
		css.WriteString("--generate-color-" + name + ": " + values[i] + ";\n")
	}
	input := writeInput(t, "theme.css", css.String())

	serial, err := Generate(Config{Inputs: []string{input}})
	require.NoError(t, err)
	parallel, err := Generate(Config{Inputs: []string{input}, Concurrency: 4})
	require.NoError(t, err)

	assert.Equal(t, serial.Document, parallel.Document)
	require.Len(t, parallel.Derivations, len(names))
	for i, d := range parallel.Derivations {
		assert.Equal(t, names[i], d.Seed)
	}
}

func TestGenerate_WritesOutputFile(t *testing.T) {
	input := writeInput(t, "theme.css", "--generate-color-brand: #ff8800;")
	out := filepath.Join(t.TempDir(), "generated.css")

	result, err := Generate(Config{Inputs: []string{input}, OutputFile: out})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, brandDocument, string(content))
	assert.Equal(t, out, result.OutputFile)
}

func TestGenerate_UnwritableOutputIsFatal(t *testing.T) {
	input := writeInput(t, "theme.css", "--generate-color-brand: #ff8800;")
	out := filepath.Join(t.TempDir(), "missing-dir", "generated.css")

	_, err := Generate(Config{Inputs: []string{input}, OutputFile: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write "+out)
}

func TestGenerate_GlobRespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "dist/\n")
	writeFile(t, filepath.Join(dir, "src", "theme.css"), "--generate-color-brand: #ff8800;")
	writeFile(t, filepath.Join(dir, "dist", "theme.css"), "--generate-color-stale: #000000;")

	result, err := Generate(Config{
		Inputs:           []string{filepath.Join(dir, "**", "*.css")},
		RespectGitignore: true,
		GitignoreFile:    filepath.Join(dir, ".gitignore"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "src", "theme.css")}, result.FilesRead)
	assert.Equal(t, brandDocument, result.Document)
}

func TestGenerate_CustomMarkerAndPrefix(t *testing.T) {
	input := writeInput(t, "theme.css", "--seed-brand: #ff8800;\n--generate-color-ignored: #000;")

	result, err := Generate(Config{
		Inputs: []string{input},
		Marker: "seed",
		Prefix: "tone",
		Stops:  shades.Stops{50},
	})
	require.NoError(t, err)

	assert.Equal(t, "@theme {\n  --tone-brand-50: #aa3a00;\n\n}\n", result.Document)
}
