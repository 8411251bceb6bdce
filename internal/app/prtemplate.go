package app

import (
	"errors"
	"os"
	"path/filepath"
)

// prTemplateLocations lists standard GitHub PR template locations in order of precedence
var prTemplateLocations = []string{
	".github/PULL_REQUEST_TEMPLATE.md",
	".github/pull_request_template.md",
	"docs/pull_request_template.md",
	"PULL_REQUEST_TEMPLATE.md",
	"pull_request_template.md",
}

// FindPRTemplate returns the content of the first pull request template found
// under root, or "" when the repository has none.
func FindPRTemplate(root string) (string, error) {
	for _, location := range prTemplateLocations {
		content, err := os.ReadFile(filepath.Join(root, location))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}
