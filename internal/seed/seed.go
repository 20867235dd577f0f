package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"shopstream/internal/repository/catalog"
)

// Apply writes the bundled demo catalog into dir as videos.json so a
// deployment can start from the demo data and edit it in place. An existing
// catalog file is left alone unless force is set.
func Apply(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dir, "videos.json")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if err := os.WriteFile(path, catalog.DefaultFixture(), 0o644); err != nil {
		return "", fmt.Errorf("write catalog fixture: %w", err)
	}
	return path, nil
}
