package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned by FindRoot when no project marker exists above the start directory.
var ErrRootNotFound = errors.New("project root not found")

// ConfigNames are the project markers FindRoot looks for, in order.
var ConfigNames = []string{"jadof.yaml", "jadof.yml", ".jadof"}

// FindRoot recursively looks upwards for a project marker (see ConfigNames).
// If found, returns the absolute path of the directory holding it.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigNames {
			if hasFile(dir, name) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
