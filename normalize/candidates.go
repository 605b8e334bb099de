package normalize

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FindCandidates lists the packages below dir eligible for processing.
// Outputs of earlier runs, recognized by the marker segment in their name,
// are skipped so that repeated runs stay idempotent. The result is sorted.
func FindCandidates(dir, marker string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+PackageExt))
	if err != nil {
		return nil, fmt.Errorf("unable to list packages in %s: %s", dir, err)
	}

	segment := "." + marker + "."
	var candidates []string
	for _, match := range matches {
		if strings.Contains(filepath.Base(match), segment) {
			continue
		}
		candidates = append(candidates, match)
	}
	return candidates, nil
}
