package importer

import (
	"fmt"
	"path/filepath"
)

// ErrNoMatches is returned when none of the supplied glob patterns match
// any file. Grounded on spec.md §4.7: "An empty glob surfaces NotFound,
// not an empty stream" — callers must be able to distinguish "nothing to
// import" from "imported nothing yet".
type ErrNoMatches struct {
	Patterns []string
}

func (e *ErrNoMatches) Error() string {
	return fmt.Sprintf("importer: no files matched patterns %v", e.Patterns)
}

// expandGlobs resolves each shell-glob pattern and returns the deduplicated
// union of matched paths in a stable order.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("importer: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, &ErrNoMatches{Patterns: patterns}
	}
	return paths, nil
}
