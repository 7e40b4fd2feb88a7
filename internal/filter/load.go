package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSON array of globs. Comments and trailing commas
// are allowed:
//
//	[
//	  // generated
//	  "*.lock",
//	  "vendor/*",
//	]
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is given by the user
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

// Gather merges inline globs with those read from each file.
func Gather(inline, files []string) ([]string, error) {
	globs := append([]string(nil), inline...)

	for _, file := range files {
		loaded, err := LoadPatterns(file)
		if err != nil {
			return nil, err
		}

		globs = append(globs, loaded...)
	}

	return globs, nil
}
