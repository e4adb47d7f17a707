package shadegen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/shadegen/internal/shades"
)

func TestDetermineReportFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		want       ReportFormat
	}{
		{name: "empty defaults to text", formatFlag: "", want: ReportText},
		{name: "explicit text", formatFlag: "text", want: ReportText},
		{name: "json", formatFlag: "json", want: ReportJSON},
		{name: "none", formatFlag: "none", want: ReportNone},
		{name: "unknown falls back to text", formatFlag: "yaml", want: ReportText},
		{name: "quiet wins over json", formatFlag: "json", quiet: true, want: ReportNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineReportFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	input := writeInput(t, "theme.css", `
		--generate-color-brand: #ff8800;
		--generate-color-bad: notacolor;
	`)
	result, err := Generate(Config{Inputs: []string{input}, Stops: shades.Stops{90, 50, 10}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{FilesRead: 1, SeedsFound: 2, SeedsGenerated: 1, SeedsSkipped: 1}, out.Summary)
	assert.Equal(t, []int{90, 50, 10}, out.Stops)
	assert.Equal(t, "hex", out.Format)
	assert.Empty(t, out.Output)

	require.Len(t, out.Seeds, 2)
	brand := out.Seeds[0]
	assert.Equal(t, "brand", brand.Name)
	assert.True(t, brand.Generated)
	assert.Equal(t, "oklch(74.42% 0.1811 56.46)", brand.OkLch)
	assert.Equal(t, []string{
		"--color-brand-90",
		"--color-brand-50",
		"--color-brand-10",
		"--color-brand-90-10",
	}, brand.Variables)

	bad := out.Seeds[1]
	assert.Equal(t, "bad", bad.Name)
	assert.False(t, bad.Generated)
	assert.Empty(t, bad.Variables)

	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, shades.DiagnosticUnparseable, out.Diagnostics[0].Kind)
	assert.Equal(t, input, out.Diagnostics[0].Source)
}

func TestWriteJSON_EmptyDiagnosticsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &GenerateResult{Format: shades.FormatHex}))
	assert.Contains(t, buf.String(), `"diagnostics": []`)
}

func TestWriteReport_Text(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	reporter := shades.NewReporter(&buf, false, false)
	result := &GenerateResult{
		Seeds:          []Seed{{Name: "a"}, {Name: "b"}},
		SeedsGenerated: 1,
		Diagnostics:    []Diagnostic{{Seed: "b"}},
	}

	WriteReport(&bytes.Buffer{}, result, ReportText, reporter)
	assert.Equal(t, "2 seeds found, 1 ladder generated (1 skipped)\n", buf.String())
}

func TestWriteReport_None(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, &GenerateResult{}, ReportNone, shades.NewReporter(&buf, false, false))
	assert.Empty(t, buf.String())
}
