package cli

import (
	"fmt"
	"path/filepath"

	"github.com/inkblue/themeconf/internal/themefile"
	"github.com/inkblue/themeconf/internal/tokens"
)

// loadTheme resolves the record the command operates on: the --file record
// alone, or the built-in record with the configured overlays applied.
func loadTheme() (*themefile.Resolved, error) {
	if themeFile != "" {
		cfg, err := themefile.LoadFile(themeFile)
		if err != nil {
			return nil, err
		}
		return &themefile.Resolved{Config: cfg, Sources: []string{themeFile}}, nil
	}

	cfg := GetConfig()
	files := make([]string, 0, len(cfg.Theme.Files))
	for _, file := range cfg.Theme.Files {
		files = append(files, projectPath(file))
	}

	var (
		resolved *themefile.Resolved
		err      error
	)
	if cfg.Theme.SkipSearchPaths {
		resolved, err = themefile.ResolveFrom(nil, files)
	} else {
		resolved, err = themefile.Resolve(cfg.ProjectDir, files)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme: %w", err)
	}
	return resolved, nil
}

// loadValidTheme is loadTheme followed by Validate.
func loadValidTheme() (*themefile.Resolved, error) {
	resolved, err := loadTheme()
	if err != nil {
		return nil, err
	}
	if err := tokens.Validate(resolved.Config); err != nil {
		return nil, err
	}
	return resolved, nil
}

// projectPath resolves a relative path against the project directory.
func projectPath(path string) string {
	if path == "" || filepath.IsAbs(path) || path == "-" {
		return path
	}
	return filepath.Join(GetConfig().ProjectDir, path)
}
