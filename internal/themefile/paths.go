package themefile

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileNames are the theme file names looked up in each search directory,
// in precedence order. The first one present wins.
var FileNames = []string{"theme.yaml", "theme.yml", "theme.json", "theme.toml"}

// SearchPaths returns theme search directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themeconf"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themeconf"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "themeconf"))
	return paths
}

// FindInDir returns the theme file in dir, or "" when there is none.
func FindInDir(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("stat theme file %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", nil
}
