package shadegen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// defaultSeedPattern matches declarations like --generate-color-fg-accent: #e6b97a;
var defaultSeedPattern = seedPattern(DefaultMarker)

// seedPattern builds the declaration pattern for a marker. Marker and name
// match case-insensitively; the value is any run without a semicolon.
func seedPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)--` + regexp.QuoteMeta(marker) + `-([a-z0-9_-]+)\s*:\s*([^;]+);`)
}

// seedSet keeps seeds in first-seen order with last-write-wins values
type seedSet struct {
	seeds []Seed
	index map[string]int
}

func newSeedSet() *seedSet {
	return &seedSet{index: make(map[string]int)}
}

// put inserts a seed or overwrites an earlier one in place
func (s *seedSet) put(seed Seed) {
	if i, ok := s.index[seed.Name]; ok {
		s.seeds[i] = seed
		return
	}
	s.index[seed.Name] = len(s.seeds)
	s.seeds = append(s.seeds, seed)
}

// scan adds every declaration in text to the set
func (s *seedSet) scan(re *regexp.Regexp, text, source string) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		s.put(Seed{
			Name:   m[1],
			Value:  strings.TrimSpace(m[2]),
			Source: source,
		})
	}
}

// ExtractSeeds scans CSS text for seed declarations using the given marker
// (DefaultMarker when empty). Seeds keep the order of their first
// declaration; a repeated name takes the later value.
func ExtractSeeds(text, marker string) []Seed {
	set := newSeedSet()
	set.scan(patternFor(marker), text, "")
	return set.seeds
}

func patternFor(marker string) *regexp.Regexp {
	if marker == "" || marker == DefaultMarker {
		return defaultSeedPattern
	}
	return seedPattern(marker)
}

// hasGlobMeta reports whether a path contains doublestar metacharacters
func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// gitIgnore wraps a compiled .gitignore with the directory it applies to
type gitIgnore struct {
	root    string
	matcher *ignore.GitIgnore
}

// loadGitIgnore compiles the ignore file.
// Gracefully degrades if the file doesn't exist.
func loadGitIgnore(path string) *gitIgnore {
	if path == "" {
		path = ".gitignore"
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil
	}
	return &gitIgnore{root: root, matcher: gi}
}

// ignores reports whether path is matched by the ignore rules. Paths
// outside the ignore file's directory are never ignored.
func (g *gitIgnore) ignores(path string) bool {
	if g == nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(g.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return g.matcher.MatchesPath(filepath.ToSlash(rel))
}

// InputStats tracks input expansion statistics
type InputStats struct {
	FilesDiscovered int // Files matched by globs or named directly
	FilesSkipped    int // Glob matches dropped by .gitignore
}

// expandInputs resolves literal paths and ** globs into an ordered,
// de-duplicated file list. Literal paths are kept even if they do not exist
// so that reading them fails loudly; a glob that matches no file is an error.
func expandInputs(patterns []string, gi *gitIgnore) ([]string, InputStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := InputStats{}

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
				stats.FilesDiscovered++
			}
			continue
		}

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)

		matched := 0
		for _, match := range matches {
			if seen[match] {
				matched++
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if gi.ignores(match) {
				stats.FilesSkipped++
				continue
			}
			seen[match] = true
			files = append(files, match)
			matched++
		}

		if matched == 0 {
			return nil, stats, fmt.Errorf("%w: %s", ErrNoInputFiles, pattern)
		}
	}

	return files, stats, nil
}
