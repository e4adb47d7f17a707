package shadegen

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/shadegen/internal/shades"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string       `json:"version"`
	Timestamp   string       `json:"timestamp"`
	Summary     JSONSummary  `json:"summary"`
	Stops       []int        `json:"stops"`
	Format      string       `json:"format"`
	Output      string       `json:"output,omitempty"`
	Seeds       []JSONSeed   `json:"seeds"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	FilesRead      int `json:"files_read"`
	SeedsFound     int `json:"seeds_found"`
	SeedsGenerated int `json:"seeds_generated"`
	SeedsSkipped   int `json:"seeds_skipped"`
}

// JSONSeed describes one seed and what became of it
type JSONSeed struct {
	Name      string   `json:"name"`
	Value     string   `json:"value"`
	Source    string   `json:"source"`
	Generated bool     `json:"generated"`
	OkLch     string   `json:"oklch,omitempty"`
	Variables []string `json:"variables,omitempty"`
}

// WriteJSON writes the run result as JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult) JSONOutput {
	generated := make(map[string]int, len(result.Derivations))
	for i, d := range result.Derivations {
		generated[d.Seed] = i
	}

	formatter := shades.NewFormatter(result.Format, result.Prefix, nil)
	seeds := make([]JSONSeed, len(result.Seeds))
	for i, seed := range result.Seeds {
		js := JSONSeed{
			Name:   seed.Name,
			Value:  seed.Value,
			Source: seed.Source,
		}
		if idx, ok := generated[seed.Name]; ok {
			d := result.Derivations[idx]
			js.Generated = true
			js.OkLch = shades.OkLchString(d.Color)
			for _, step := range d.Steps {
				js.Variables = append(js.Variables, formatter.StepName(seed.Name, step.Percent))
			}
			for _, p := range d.Pairs {
				js.Variables = append(js.Variables, formatter.PairName(seed.Name, p))
			}
		}
		seeds[i] = js
	}

	diags := result.Diagnostics
	if diags == nil {
		diags = []Diagnostic{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesRead:      len(result.FilesRead),
			SeedsFound:     len(result.Seeds),
			SeedsGenerated: result.SeedsGenerated,
			SeedsSkipped:   len(result.Diagnostics),
		},
		Stops:       result.Stops,
		Format:      string(result.Format),
		Output:      result.OutputFile,
		Seeds:       seeds,
		Diagnostics: diags,
	}
}
